package domain

// WritePolicy is the static per-resource authorization table for mutating
// methods (POST/PUT/DELETE). Reads are open to any authenticated role.
// The router consults this table when wiring routes; it is never read from
// inside business logic.
var WritePolicy = map[string][]Role{
	"departments": {RoleAdmin, RoleHR},
	"employees":   {RoleAdmin, RoleHR},
	"roles":       {RoleAdmin},
}

// Allowed reports whether the intersection of the caller's roles and the
// required set is non-empty. An empty required set denies everything.
func Allowed(have, required []Role) bool {
	for _, h := range have {
		for _, r := range required {
			if h == r {
				return true
			}
		}
	}
	return false
}
