package analysis

import "github.com/ZanzyTHEbar/team-gravity/internal/types"

// defaultArchetypeSynergy is used whenever either archetype falls outside the
// known set. Unknown archetypes are never an error.
const defaultArchetypeSynergy = 0.5

// archetypeSynergy pairs the six archetypes symmetrically. Indexed by the
// canonical order of types.Archetypes, which keeps the lookup exhaustive by
// construction instead of going through stringly-typed map keys.
var archetypeSynergy = [6][6]float64{
	//           pioneer guardian connector innovator specialist mentor
	/* pioneer    */ {0.5, 0.9, 0.7, 0.7, 0.6, 0.8},
	/* guardian   */ {0.9, 0.4, 0.6, 0.4, 0.8, 0.7},
	/* connector  */ {0.7, 0.6, 0.6, 0.8, 0.7, 0.9},
	/* innovator  */ {0.7, 0.4, 0.8, 0.6, 0.9, 0.7},
	/* specialist */ {0.6, 0.8, 0.7, 0.9, 0.5, 0.9},
	/* mentor     */ {0.8, 0.7, 0.9, 0.7, 0.9, 0.4},
}

func archetypeIndex(a types.Archetype) int {
	for i, known := range types.Archetypes {
		if a == known {
			return i
		}
	}
	return -1
}

// ArchetypeSynergy returns the symmetric pairing score for two archetypes.
func ArchetypeSynergy(a, b types.Archetype) float64 {
	i, j := archetypeIndex(a), archetypeIndex(b)
	if i < 0 || j < 0 {
		return defaultArchetypeSynergy
	}
	return archetypeSynergy[i][j]
}

// complementarity scores how little two tag sets overlap: 1 minus the Jaccard
// index. Two members with no shareable tags at all (empty union) are treated
// as maximally complementary.
func complementarity(a, b []string) float64 {
	union := make(map[string]bool, len(a)+len(b))
	inA := make(map[string]bool, len(a))
	for _, tag := range a {
		union[tag] = true
		inA[tag] = true
	}
	intersection := 0
	for _, tag := range b {
		if !union[tag] {
			union[tag] = true
		} else if inA[tag] {
			intersection++
			inA[tag] = false // count shared tags once
		}
	}
	if len(union) == 0 {
		return 1
	}
	return 1 - float64(intersection)/float64(len(union))
}
