// 数据集体检工具：校验内置静态数据集的坐标范围、id 唯一性与必填字段；发现缺陷退出码 1
package main

import (
	"fmt"
	"os"
	"strings"

	"court-api/internal/providers"
)

func main() {
	data := providers.DefaultDataset()
	seen := make(map[string]bool, len(data))
	defects := 0
	for _, rec := range data {
		if strings.TrimSpace(rec.ID) == "" {
			fmt.Printf("DEFECT empty id (name=%q)\n", rec.Name)
			defects++
			continue
		}
		if seen[rec.ID] {
			fmt.Printf("DEFECT duplicate id %s\n", rec.ID)
			defects++
		}
		seen[rec.ID] = true
		if strings.TrimSpace(rec.Name) == "" {
			fmt.Printf("DEFECT %s: empty name\n", rec.ID)
			defects++
		}
		if rec.Sport == "" {
			fmt.Printf("DEFECT %s: missing sport\n", rec.ID)
			defects++
		}
		if rec.Position.Known && !rec.Position.Point.Valid() {
			fmt.Printf("DEFECT %s: coordinates out of range (%f,%f)\n", rec.ID, rec.Position.Point.Lat, rec.Position.Point.Lng)
			defects++
		}
		if rec.Rating < 0 || rec.Rating > 5 {
			fmt.Printf("DEFECT %s: rating out of range %f\n", rec.ID, rec.Rating)
			defects++
		}
		if rec.PriceKnown && rec.PricePerHour < 0 {
			fmt.Printf("DEFECT %s: negative price\n", rec.ID)
			defects++
		}
	}
	fmt.Printf("checked %d records, %d defects\n", len(data), defects)
	if defects > 0 {
		os.Exit(1)
	}
}
