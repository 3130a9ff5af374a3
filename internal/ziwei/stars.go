package ziwei

// StarKind classifies a star for interpretation; it plays no part in
// placement.
type StarKind string

// Star kinds.
const (
	Major   StarKind = "major"
	Lucky   StarKind = "lucky"
	Ominous StarKind = "ominous"
)

// Star is a placed star.
type Star struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Kind StarKind `json:"kind"`
}

type groupStar struct {
	Star
	offset int
}

var ziWeiGroup = []groupStar{
	{Star{"ZiWei", "紫微", Major}, 0},
	{Star{"TianJi", "天機", Major}, -1},
	{Star{"TaiYang", "太陽", Major}, -3},
	{Star{"WuQu", "武曲", Major}, -4},
	{Star{"TianTong", "天同", Major}, -5},
	{Star{"LianZhen", "廉貞", Major}, -8},
}

var tianFuGroup = []groupStar{
	{Star{"TianFu", "天府", Major}, 0},
	{Star{"TaiYin", "太陰", Major}, 1},
	{Star{"TanLang", "貪狼", Major}, 2},
	{Star{"JuMen", "巨門", Major}, 3},
	{Star{"TianXiang", "天相", Major}, 4},
	{Star{"TianLiang", "天梁", Major}, 5},
	{Star{"QiSha", "七殺", Major}, 6},
	{Star{"PoJun", "破軍", Major}, 10},
}

var (
	zuoFu    = Star{"ZuoFu", "左輔", Lucky}
	youBi    = Star{"YouBi", "右弼", Lucky}
	wenChang = Star{"WenChang", "文昌", Lucky}
	wenQu    = Star{"WenQu", "文曲", Lucky}
	tianKui  = Star{"TianKui", "天魁", Lucky}
	tianYue  = Star{"TianYue", "天鉞", Lucky}
	luCun    = Star{"LuCun", "祿存", Lucky}
	qingYang = Star{"QingYang", "擎羊", Ominous}
	tuoLuo   = Star{"TuoLuo", "陀羅", Ominous}
	huoXing  = Star{"HuoXing", "火星", Ominous}
	lingXing = Star{"LingXing", "鈴星", Ominous}
	diKong   = Star{"DiKong", "地空", Ominous}
	diJie    = Star{"DiJie", "地劫", Ominous}
)

// luCunByStem is the palace of 祿存 for each year stem.
var luCunByStem = [10]int{2, 3, 5, 6, 5, 6, 8, 9, 11, 0}

// placement is a star and the palace it lands in.
type placement struct {
	star   Star
	palace int
}

// majorStars places the 紫微 and 天府 groups.
func majorStars(ziWei, tianFu int) []placement {
	out := make([]placement, 0, len(ziWeiGroup)+len(tianFuGroup))
	for _, s := range ziWeiGroup {
		out = append(out, placement{s.Star, mod(ziWei+s.offset, 12)})
	}
	for _, s := range tianFuGroup {
		out = append(out, placement{s.Star, mod(tianFu+s.offset, 12)})
	}
	return out
}

// auxiliaryStars places the month, hour and year keyed stars.
func auxiliaryStars(lunarMonth, hourBranch, yearStem, yearBranch int) []placement {
	kui, yue := kuiYue(yearStem)
	lu := luCunByStem[mod(yearStem, 10)]
	huo, ling := huoLingStart(yearBranch)

	return []placement{
		{zuoFu, mod(4+lunarMonth-1, 12)},
		{youBi, mod(10-(lunarMonth-1), 12)},
		{wenChang, mod(10-hourBranch, 12)},
		{wenQu, mod(4+hourBranch, 12)},
		{tianKui, kui},
		{tianYue, yue},
		{luCun, lu},
		{qingYang, mod(lu+1, 12)},
		{tuoLuo, mod(lu-1, 12)},
		{huoXing, mod(huo+hourBranch, 12)},
		{lingXing, mod(ling+hourBranch, 12)},
		{diKong, mod(11-hourBranch, 12)},
		{diJie, mod(11+hourBranch, 12)},
	}
}

func kuiYue(yearStem int) (kui, yue int) {
	switch mod(yearStem, 10) {
	case 0, 4, 6:
		return 1, 7
	case 1, 5:
		return 0, 8
	case 2, 3:
		return 11, 9
	case 8, 9:
		return 5, 3
	default: // 辛
		return 6, 2
	}
}

// huoLingStart returns the starting palaces of 火星 and 鈴星 for a year
// branch, before the hour offset.
func huoLingStart(yearBranch int) (huo, ling int) {
	switch mod(yearBranch, 12) {
	case 2, 6, 10, 8, 0, 4:
		return 2, 10
	case 5, 9, 1:
		return 3, 10
	default:
		return 9, 10
	}
}
