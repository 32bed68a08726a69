package model

// GradePoint 等级绩点对照表条目
type GradePoint struct {
	Letter string  `json:"letter"`
	Marks  string  `json:"marks"` // 分数区间，仅展示用
	Points float64 `json:"points"`
}

// GradeTable 固定 12 行等级绩点对照表
var GradeTable = []GradePoint{
	{Letter: "A+", Marks: "90-100", Points: 4.0},
	{Letter: "A", Marks: "80-89", Points: 4.0},
	{Letter: "A-", Marks: "75-79", Points: 3.7},
	{Letter: "B+", Marks: "70-74", Points: 3.3},
	{Letter: "B", Marks: "65-69", Points: 3.0},
	{Letter: "B-", Marks: "60-64", Points: 2.7},
	{Letter: "C+", Marks: "55-59", Points: 2.3},
	{Letter: "C", Marks: "50-54", Points: 2.0},
	{Letter: "C-", Marks: "45-49", Points: 1.7},
	{Letter: "D+", Marks: "40-44", Points: 1.3},
	{Letter: "D", Marks: "35-39", Points: 1.0},
	{Letter: "F", Marks: "0-34", Points: 0.0},
}

// PointsFor 查找等级对应绩点
func PointsFor(letter string) (float64, bool) {
	for _, g := range GradeTable {
		if g.Letter == letter {
			return g.Points, true
		}
	}
	return 0, false
}
