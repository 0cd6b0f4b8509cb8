package presence_test

import (
	"fmt"

	"github.com/hupe1980/presence"
)

func ExampleNew() {
	s := presence.Must(presence.New[uint8](4))
	s.Unset(2)

	fmt.Println(s)
	fmt.Println(s.Count())
	// Output:
	// presence.Set{capacity: 4, bits: 0b1011}
	// 3
}

func ExampleSet_PopSmallest() {
	s := presence.Must(presence.New[uint8](4))

	for {
		p, ok := s.PopSmallest()
		if !ok {
			break
		}
		fmt.Println(p)
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
}

func ExampleSet_SelectLow() {
	s := presence.Must(presence.New[uint8](4))
	s.Unset(1)

	for k := 0; k < 4; k++ {
		if p, ok := s.SelectLow(k); ok {
			fmt.Printf("rank %d: slot %d\n", k, p)
		} else {
			fmt.Printf("rank %d: absent\n", k)
		}
	}
	// Output:
	// rank 0: slot 0
	// rank 1: slot 2
	// rank 2: slot 3
	// rank 3: absent
}

func ExampleSet_Absorb() {
	a := presence.Must(presence.New[uint16](3))
	b := presence.Must(presence.NewEmpty[uint16](9))
	b.Set(8)

	a.Absorb(b)
	fmt.Println(a.Capacity(), a.Count())
	// Output:
	// 9 4
}

func ExampleNew128() {
	s := presence.Must128(presence.NewEmpty128(100))
	s.Set(0)
	s.Set(64)
	s.Set(99)

	p, _ := s.SelectHigh(1)
	fmt.Println(s.Count(), p)
	// Output:
	// 3 64
}
