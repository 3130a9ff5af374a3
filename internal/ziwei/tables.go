package ziwei

// Stems are the ten Heavenly Stems, 甲 through 癸.
var Stems = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches are the twelve Earthly Branches, 子 through 亥.
var Branches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// PalaceNames are the twelve palace names counted backwards from the Life
// palace.
var PalaceNames = [12]string{"命宮", "兄弟", "夫妻", "子女", "財帛", "疾厄", "遷移", "交友", "官祿", "田宅", "福德", "父母"}

// yin is the branch index of 寅, the anchor of every palace count.
const yin = 2

// naYinBureau gives the Five Element bureau of each position in the
// sixty stem-branch cycle, starting at 甲子.
var naYinBureau = [60]int{
	4, 4, 6, 6, 3, 3, 4, 4, 2, 2,
	6, 6, 2, 2, 5, 5, 6, 6, 3, 3,
	4, 4, 5, 5, 2, 2, 3, 3, 4, 4,
	2, 2, 6, 6, 5, 5, 2, 2, 3, 3,
	3, 3, 5, 5, 6, 6, 3, 3, 2, 2,
	5, 5, 4, 4, 3, 3, 5, 5, 6, 6,
}

var bureauNames = map[int]string{
	2: "水二局",
	3: "木三局",
	4: "金四局",
	5: "土五局",
	6: "火六局",
}

// BureauName returns the Chinese name of a bureau number, or "" when the
// number is not 2..6.
func BureauName(b int) string { return bureauNames[b] }

// mod returns n modulo m in [0, m).
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
