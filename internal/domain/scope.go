package domain

import "fmt"

// Scope is the caller's identity and role, resolved once from the bearer
// credential. Repositories use it to restrict which rows an operation may
// read instead of branching on the role string inside every query.
type Scope struct {
	UserID int
	Role   Role
}

// OrderFilter returns a SQL predicate limiting orders to those the scope may
// read. argPos is the positional index the predicate's parameter should use.
// An empty predicate means global visibility.
func (s Scope) OrderFilter(alias string, argPos int) (string, []any) {
	switch s.Role {
	case RoleSupplier:
		return fmt.Sprintf("%ssupplier_id = $%d", prefix(alias), argPos), []any{s.UserID}
	case RoleCustomer:
		return fmt.Sprintf("%scustomer_id = $%d", prefix(alias), argPos), []any{s.UserID}
	default:
		return "", nil
	}
}

// ProductFilter limits products to the supplier's own catalog; customers and
// admins see all products.
func (s Scope) ProductFilter(alias string, argPos int) (string, []any) {
	if s.Role == RoleSupplier {
		return fmt.Sprintf("%ssupplier_id = $%d", prefix(alias), argPos), []any{s.UserID}
	}
	return "", nil
}

func prefix(alias string) string {
	if alias == "" {
		return ""
	}
	return alias + "."
}
