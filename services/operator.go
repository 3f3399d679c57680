package services

// OperatorIdentity answers who holds operator privilege. It is injected into
// the services that need it rather than read from ambient configuration, so
// tests can supply fakes.
type OperatorIdentity interface {
	IsOperator(userID int64) bool
	Operators() []int64
}

// AllowList is a static OperatorIdentity backed by configuration.
type AllowList struct {
	ids map[int64]struct{}
}

// NewAllowList creates an AllowList from a list of user ids.
func NewAllowList(ids []int64) *AllowList {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &AllowList{ids: set}
}

func (a *AllowList) IsOperator(userID int64) bool {
	_, ok := a.ids[userID]
	return ok
}

func (a *AllowList) Operators() []int64 {
	out := make([]int64, 0, len(a.ids))
	for id := range a.ids {
		out = append(out, id)
	}
	return out
}
