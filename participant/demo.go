package participant

// Demo returns the four-person sample roster:
//
//	foo  give={art, writing}        receive={art}
//	baz  give={writing}             receive={writing}
//	qux  give={art, music, writing} receive={art, music, writing}
//	quux give={art, music}          receive={art}
//
// Its category count is 3. A fresh slice is returned on every call.
func Demo() []Participant {
	return []Participant{
		MustNew("foo", []string{"art", "writing"}, []string{"art"}),
		MustNew("baz", []string{"writing"}, []string{"writing"}),
		MustNew("qux", []string{"art", "writing", "music"}, []string{"art", "writing", "music"}),
		MustNew("quux", []string{"art", "music"}, []string{"art"}),
	}
}
