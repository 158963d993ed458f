// Package participant defines the people taking part in a gift exchange and
// the (giver, receiver) pairs produced for them.
//
// A Participant is an immutable value: a unique name plus two category sets,
// the kinds of gift the person can give and the kinds they would like to
// receive. Identity is the name alone; two values with the same name are the
// same participant, whatever their categories say.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/giftswap/participant"
//
//	foo, err := participant.New("foo", []string{"art", "writing"}, []string{"art"})
//	if err != nil {
//	  // handle ErrEmptyName
//	}
//
//	roster, err := participant.DecodeJSON(data) // [{"name":..,"can_give":[..],"can_receive":[..]}]
//	c := participant.CategoryCount(roster)     // |∪ can_receive|
//
// Allocation.String renders "<giver> -> <receiver>", the only textual form
// consumers are expected to parse.
package participant
