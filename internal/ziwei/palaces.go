package ziwei

// Palace is one of the twelve chart positions. Index equals the branch
// index, so palace 0 sits on 子.
type Palace struct {
	Index  int    `json:"index"`
	Stem   int    `json:"stem"`
	Branch int    `json:"branch"`
	Name   string `json:"name"`
	IsMing bool   `json:"is_ming"`
	IsShen bool   `json:"is_shen"`
	Stars  []Star `json:"stars"`
}

// StemBranch renders the palace's stem and branch, for example "丙寅".
func (p Palace) StemBranch() string { return Stems[p.Stem] + Branches[p.Branch] }

// HourBranch maps a clock hour (0..23) to its double-hour branch. 23:00
// and 00:xx both fall in 子.
func HourBranch(hour int) int {
	if hour >= 23 || hour < 1 {
		return 0
	}
	return (hour + 1) / 2
}

// MingShen returns the Life (命) and Body (身) palace indices. Both are
// counted from 寅 by lunar month, then the Life palace moves back and the
// Body palace forward by the hour branch.
func MingShen(lunarMonth, hourBranch int) (ming, shen int) {
	ming = mod(yin+lunarMonth-1-hourBranch, 12)
	shen = mod(yin+lunarMonth-1+hourBranch, 12)
	return ming, shen
}

// yinStem is the stem of the 寅 palace, by the Five Tigers rule.
func yinStem(yearStem int) int {
	return mod(yearStem, 5)*2 + 2
}

// Layout builds the twelve palaces with stems, names and the Life/Body
// flags. Stars are not yet placed.
func Layout(lunarMonth, hourBranch, yearStem int) (palaces [12]Palace, ming, shen int) {
	ming, shen = MingShen(lunarMonth, hourBranch)
	first := yinStem(yearStem)
	for i := range palaces {
		palaces[i] = Palace{
			Index:  i,
			Stem:   mod(first+mod(i-yin, 12), 10),
			Branch: i,
		}
	}
	for i, name := range PalaceNames {
		pos := mod(ming-i, 12)
		palaces[pos].Name = name
	}
	palaces[ming].IsMing = true
	palaces[shen].IsShen = true
	return palaces, ming, shen
}

// Bureau returns the Five Element bureau (2..6) of the palace with the
// given stem and branch, from its position in the sixty-cycle.
func Bureau(stem, branch int) int {
	for k := range naYinBureau {
		if k%10 == stem && k%12 == branch {
			return naYinBureau[k]
		}
	}
	// Stem and branch of opposite parity never meet in the cycle.
	return 0
}

// ZiWeiPosition returns the palace of 紫微 for a lunar day and bureau.
func ZiWeiPosition(lunarDay, bureau int) int {
	if bureau <= 0 {
		return yin
	}
	if lunarDay%bureau == 0 {
		return mod(yin+lunarDay/bureau-1, 12)
	}
	q := (lunarDay + bureau - 1) / bureau
	r := q*bureau - lunarDay
	return mod(yin+q+r-1, 12)
}

// TianFuPosition mirrors 紫微 across the 寅申 axis to place 天府.
func TianFuPosition(ziWei int) int {
	return mod(4-ziWei, 12)
}
