package style_test

import (
	"fmt"

	"github.com/matzehuels/fontify/pkg/style"
)

func ExampleRegistry_Lookup() {
	s, err := style.Default().Lookup("tat-roman-num")
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Name)
	fmt.Println(s.Apply("2025"))
	// Output:
	// Números Romanos (Fechas)
	// MMXXV
}

func ExampleByCategory() {
	graffiti := style.ByCategory(style.CategoryGraffiti)
	for _, s := range graffiti[:3] {
		fmt.Println(s.ID, s.Apply("Paz"))
	}
	// Output:
	// tat-graf-bubble 🅟🅐🅩
	// tat-graf-block 🅿🅰🆉
	// tat-graf-tag ★ 𝗣𝗮𝘇 ★
}

func ExampleDecoration_Apply() {
	fmt.Println(style.DecorationMoon.Apply("Luna"))
	// Output: ☾ Luna ☽
}
