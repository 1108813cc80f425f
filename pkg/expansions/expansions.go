package expansions

// All 返回全部世代 (副本，调用方可随意修改)
func All() []Expansion {
	out := make([]Expansion, len(catalogue))
	for i, e := range catalogue {
		e.Sets = append([]Set(nil), e.Sets...)
		out[i] = e
	}
	return out
}

// ByID 按世代 ID 查找
func ByID(id string) (Expansion, bool) {
	for _, e := range catalogue {
		if e.ID == id {
			e.Sets = append([]Set(nil), e.Sets...)
			return e, true
		}
	}
	return Expansion{}, false
}

// SetByID 按系列 ID 查找
func SetByID(setID string) (Set, bool) {
	for _, e := range catalogue {
		for _, s := range e.Sets {
			if s.ID == setID {
				return s, true
			}
		}
	}
	return Set{}, false
}

// SetsByExpansion 某世代下的系列，未知世代返回空
func SetsByExpansion(expansionID string) []Set {
	e, ok := ByID(expansionID)
	if !ok {
		return []Set{}
	}
	return e.Sets
}

// ExpansionBySetID 查找系列所属世代
func ExpansionBySetID(setID string) (Expansion, bool) {
	for _, e := range catalogue {
		for _, s := range e.Sets {
			if s.ID == setID {
				return ByID(e.ID)
			}
		}
	}
	return Expansion{}, false
}
