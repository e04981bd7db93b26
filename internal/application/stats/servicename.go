package stats

import (
	"sort"
	"strings"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// ResolveServiceName produces the display label for a booking's services.
// When the joined service set resolves to at least one name, those names are
// deduplicated, ordered alphabetically and comma-separated. Otherwise the
// legacy single reference's name is used.
func ResolveServiceName(ref model.ServiceRef, names map[string]string) string {
	seen := make(map[string]struct{}, len(ref.ManyIDs))
	joined := make([]string, 0, len(ref.ManyIDs))
	for _, id := range ref.ManyIDs {
		name := names[id]
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		joined = append(joined, name)
	}
	if len(joined) > 0 {
		sort.Strings(joined)
		return strings.Join(joined, ", ")
	}
	return names[ref.SingleID]
}
