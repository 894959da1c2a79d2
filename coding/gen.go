//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// tables from qrencode-3.1.1/qrspec.c

var capacity = [41]struct {
	width     int
	words     int
	remainder int
	ec        [4]int
}{
	{0, 0, 0, [4]int{0, 0, 0, 0}},
	{21, 26, 0, [4]int{7, 10, 13, 17}}, // 1
	{25, 44, 7, [4]int{10, 16, 22, 28}},
	{29, 70, 7, [4]int{15, 26, 36, 44}},
	{33, 100, 7, [4]int{20, 36, 52, 64}},
	{37, 134, 7, [4]int{26, 48, 72, 88}}, // 5
	{41, 172, 7, [4]int{36, 64, 96, 112}},
	{45, 196, 0, [4]int{40, 72, 108, 130}},
	{49, 242, 0, [4]int{48, 88, 132, 156}},
	{53, 292, 0, [4]int{60, 110, 160, 192}},
	{57, 346, 0, [4]int{72, 130, 192, 224}}, //10
	{61, 404, 0, [4]int{80, 150, 224, 264}},
	{65, 466, 0, [4]int{96, 176, 260, 308}},
	{69, 532, 0, [4]int{104, 198, 288, 352}},
	{73, 581, 3, [4]int{120, 216, 320, 384}},
	{77, 655, 3, [4]int{132, 240, 360, 432}}, //15
	{81, 733, 3, [4]int{144, 280, 408, 480}},
	{85, 815, 3, [4]int{168, 308, 448, 532}},
	{89, 901, 3, [4]int{180, 338, 504, 588}},
	{93, 991, 3, [4]int{196, 364, 546, 650}},
	{97, 1085, 3, [4]int{224, 416, 600, 700}}, //20
	{101, 1156, 4, [4]int{224, 442, 644, 750}},
	{105, 1258, 4, [4]int{252, 476, 690, 816}},
	{109, 1364, 4, [4]int{270, 504, 750, 900}},
	{113, 1474, 4, [4]int{300, 560, 810, 960}},
	{117, 1588, 4, [4]int{312, 588, 870, 1050}}, //25
	{121, 1706, 4, [4]int{336, 644, 952, 1110}},
	{125, 1828, 4, [4]int{360, 700, 1020, 1200}},
	{129, 1921, 3, [4]int{390, 728, 1050, 1260}},
	{133, 2051, 3, [4]int{420, 784, 1140, 1350}},
	{137, 2185, 3, [4]int{450, 812, 1200, 1440}}, //30
	{141, 2323, 3, [4]int{480, 868, 1290, 1530}},
	{145, 2465, 3, [4]int{510, 924, 1350, 1620}},
	{149, 2611, 3, [4]int{540, 980, 1440, 1710}},
	{153, 2761, 3, [4]int{570, 1036, 1530, 1800}},
	{157, 2876, 0, [4]int{570, 1064, 1590, 1890}}, //35
	{161, 3034, 0, [4]int{600, 1120, 1680, 1980}},
	{165, 3196, 0, [4]int{630, 1204, 1770, 2100}},
	{169, 3362, 0, [4]int{660, 1260, 1860, 2220}},
	{173, 3532, 0, [4]int{720, 1316, 1950, 2310}},
	{177, 3706, 0, [4]int{750, 1372, 2040, 2430}}, //40
}

var eccTable = [41][4][2]int{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{2, 2}, {4, 1}, {6, 2}, {6, 2}}, //10
	{{4, 0}, {1, 4}, {4, 4}, {3, 8}},
	{{2, 2}, {6, 2}, {4, 6}, {7, 4}},
	{{4, 0}, {8, 1}, {8, 4}, {12, 4}},
	{{3, 1}, {4, 5}, {11, 5}, {11, 5}},
	{{5, 1}, {5, 5}, {5, 7}, {11, 7}}, //15
	{{5, 1}, {7, 3}, {15, 2}, {3, 13}},
	{{1, 5}, {10, 1}, {1, 15}, {2, 17}},
	{{5, 1}, {9, 4}, {17, 1}, {2, 19}},
	{{3, 4}, {3, 11}, {17, 4}, {9, 16}},
	{{3, 5}, {3, 13}, {15, 5}, {15, 10}}, //20
	{{4, 4}, {17, 0}, {17, 6}, {19, 6}},
	{{2, 7}, {17, 0}, {7, 16}, {34, 0}},
	{{4, 5}, {4, 14}, {11, 14}, {16, 14}},
	{{6, 4}, {6, 14}, {11, 16}, {30, 2}},
	{{8, 4}, {8, 13}, {7, 22}, {22, 13}}, //25
	{{10, 2}, {19, 4}, {28, 6}, {33, 4}},
	{{8, 4}, {22, 3}, {8, 26}, {12, 28}},
	{{3, 10}, {3, 23}, {4, 31}, {11, 31}},
	{{7, 7}, {21, 7}, {1, 37}, {19, 26}},
	{{5, 10}, {19, 10}, {15, 25}, {23, 25}}, //30
	{{13, 3}, {2, 29}, {42, 1}, {23, 28}},
	{{17, 0}, {10, 23}, {10, 35}, {19, 35}},
	{{17, 1}, {14, 21}, {29, 19}, {11, 46}},
	{{13, 6}, {14, 23}, {44, 7}, {59, 1}},
	{{12, 7}, {12, 26}, {39, 14}, {22, 41}}, //35
	{{6, 14}, {6, 34}, {46, 10}, {2, 64}},
	{{17, 4}, {29, 14}, {49, 10}, {24, 46}},
	{{4, 18}, {13, 32}, {48, 14}, {42, 32}},
	{{20, 4}, {40, 7}, {43, 22}, {10, 67}},
	{{19, 6}, {18, 31}, {34, 34}, {20, 61}}, //40
}

// alignment pattern centres, ISO/IEC 18004 table E.1
var align = [41][]int{
	2: {6, 18}, 3: {6, 22}, 4: {6, 26}, 5: {6, 30},
	6: {6, 34}, 7: {6, 22, 38}, 8: {6, 24, 42}, 9: {6, 26, 46},
	10: {6, 28, 50}, 11: {6, 30, 54}, 12: {6, 32, 58},
	13: {6, 34, 62}, 14: {6, 26, 46, 66}, 15: {6, 26, 48, 70},
	16: {6, 26, 50, 74}, 17: {6, 30, 54, 78}, 18: {6, 30, 56, 82},
	19: {6, 30, 58, 86}, 20: {6, 34, 62, 90},
	21: {6, 28, 50, 72, 94}, 22: {6, 26, 50, 74, 98},
	23: {6, 30, 54, 78, 102}, 24: {6, 28, 54, 80, 106},
	25: {6, 32, 58, 84, 110}, 26: {6, 30, 58, 86, 114},
	27: {6, 34, 62, 90, 118}, 28: {6, 26, 50, 74, 98, 122},
	29: {6, 30, 54, 78, 102, 126}, 30: {6, 26, 52, 78, 104, 130},
	31: {6, 30, 56, 82, 108, 134}, 32: {6, 34, 60, 86, 112, 138},
	33: {6, 30, 58, 86, 114, 142}, 34: {6, 34, 62, 90, 118, 146},
	35: {6, 30, 54, 78, 102, 126, 150},
	36: {6, 24, 50, 76, 102, 128, 154},
	37: {6, 28, 54, 80, 106, 132, 158},
	38: {6, 32, 58, 84, 110, 136, 162},
	39: {6, 26, 54, 82, 110, 138, 166},
	40: {6, 30, 58, 86, 114, 142, 170},
}

// character count field lengths by mode and size class
var countLength = [4][3]int{
	{10, 12, 14}, // numeric
	{9, 11, 13},  // alphanumeric
	{8, 16, 16},  // byte
	{8, 10, 12},  // kanji
}

// encodedLength returns the length in bits of n characters in mode m,
// excluding the header.
func encodedLength(m, n int) int {
	switch m {
	case 0:
		return n/3*10 + [3]int{0, 4, 7}[n%3]
	case 1:
		return n/2*11 + n%2*6
	case 2:
		return n * 8
	}
	return n * 13
}

// maxChars returns the number of characters in mode m fitting into
// the given number of data bits at size class class.
func maxChars(bits, m, class int) int {
	cl := countLength[m][class]
	bits -= 4 + cl
	lo, hi := 0, bits
	for lo < hi {
		if mid := (lo + hi + 1) / 2; encodedLength(m, mid) <= bits {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return min(lo, 1<<cl-1)
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table.
var vtab = [MaxVersion + 1]version{
`)
	var chars [41][4][4]int
	for i := 1; i <= 40; i++ {
		class := 0
		if i > 26 {
			class = 2
		} else if i > 9 {
			class = 1
		}
		al := "nil"
		if a := align[i]; a != nil {
			s := make([]string, len(a))
			for j, v := range a {
				s[j] = strconv.Itoa(v)
			}
			al = "[]int{" + strings.Join(s, ", ") + "}"
		}
		fmt.Fprintf(w, "\t%d: {%d, %s, [4]blocks{\n", i, capacity[i].words, al)
		for l := 0; l < 4; l++ {
			g1, g2 := eccTable[i][l][0], eccTable[i][l][1]
			nb := g1 + g2
			check := capacity[i].ec[l] / nb
			data := capacity[i].words - capacity[i].ec[l]
			if data%nb != g2 {
				panic(fmt.Sprintf("version %d level %d: bad blocks", i, l))
			}
			if g2 == 0 {
				fmt.Fprintf(w, "\t\t{%d, %d, [2]group{{%d, %d}}},\n",
					data, check, g1, data/nb)
			} else {
				fmt.Fprintf(w, "\t\t{%d, %d, [2]group{{%d, %d}, {%d, %d}}},\n",
					data, check, g1, data/nb, g2, data/nb+1)
			}
			for m := 0; m < 4; m++ {
				chars[i][l][m] = maxChars(data*8, m, class)
			}
		}
		fmt.Fprintln(w, "\t}},")
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// Character capacity by version, level and mode.\n"+
		"var capacity = [MaxVersion + 1][H + 1][modes]int{\n")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(w, "\t%d: {", i)
		for l := 0; l < 4; l++ {
			if l != 0 {
				fmt.Fprint(w, ", ")
			}
			c := chars[i][l]
			fmt.Fprintf(w, "{%d, %d, %d, %d}", c[0], c[1], c[2], c[3])
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
