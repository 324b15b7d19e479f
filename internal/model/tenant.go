package model

// DefaultTenantID is used when a request carries no tenant id. Single-tenant
// deployments never send one; the default keeps them working without special
// casing anywhere below the model boundary.
const DefaultTenantID = "user"

func tenantOrDefault(id string) string {
	if id == "" {
		return DefaultTenantID
	}

	return id
}
