package xlsx_test

import (
	"fmt"

	"github.com/matzehuels/testspec/pkg/render/table"
	"github.com/matzehuels/testspec/pkg/render/xlsx"
	"github.com/matzehuels/testspec/pkg/testspec"
)

func ExampleRender() {
	spec := &testspec.Spec{
		Title: "Smoke",
		Cases: []testspec.PrimaryItem{{Title: "Boot"}},
	}
	grid := table.Layout(spec, table.Columns{})

	data, err := xlsx.Render(grid, xlsx.WithSheetName(spec.Title))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(data) > 0, string(data[:2]))
	// Output: true PK
}
