package authroles

import (
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
)

// CodeMapper translates backend numeric role codes through the domain's
// closed role table. Overrides let deployments remap codes without touching
// the table; an override to an invalid role still resolves to RoleUnknown.
type CodeMapper struct {
	Overrides map[int]domainauth.Role
}

func (m CodeMapper) Map(code int) domainauth.Role {
	if m.Overrides != nil {
		if r, ok := m.Overrides[code]; ok {
			if !r.Valid() {
				return domainauth.RoleUnknown
			}
			return r
		}
	}
	return domainauth.RoleFromCode(code)
}
