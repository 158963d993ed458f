package participant_test

import (
	"fmt"

	"github.com/katalvlaran/giftswap/participant"
)

// ExampleDecodeJSON decodes a roster and reports the scoring normalizer.
func ExampleDecodeJSON() {
	data := []byte(`[
		{"name": "ada", "can_give": ["books", "tea"], "can_receive": ["music"]},
		{"name": "bo",  "can_give": ["music"],        "can_receive": ["books", "tea"]}
	]`)

	roster, err := participant.DecodeJSON(data)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range roster {
		fmt.Println(p)
	}
	fmt.Println("categories:", participant.CategoryCount(roster))
	// Output:
	// ada give={books, tea} receive={music}
	// bo give={music} receive={books, tea}
	// categories: 3
}

// ExampleAllocation_String shows the rendering consumers rely on.
func ExampleAllocation_String() {
	ps := participant.Demo()
	fmt.Println(participant.Allocation{Giver: ps[0], Receiver: ps[2]})
	// Output:
	// foo -> qux
}
