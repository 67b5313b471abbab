package filters

// PathFilter restricts which paths a diff pass considers. A nil filter is not
// valid; use All for "no restriction".
type PathFilter func(path string) bool

func All(path string) bool {
	return true
}

func GroupPathFilters(fs ...PathFilter) PathFilter {
	switch len(fs) {
	case 0:
		return All
	case 1:
		return fs[0]
	default:
		return func(path string) bool {
			for _, f := range fs {
				if f(path) {
					return true
				}
			}
			return false
		}
	}
}
