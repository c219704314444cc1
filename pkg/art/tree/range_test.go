package tree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
	. "github.com/flier/radixart/pkg/art/tree"
)

func TestRange(t *testing.T) {
	Convey("Given a tree with several keys", t, func() {
		a := new(arena.Arena)
		var root node.Ref[int]

		keys := []string{"banana", "apple", "cherry", "avocado", "blueberry", "date"}
		for i, k := range keys {
			Insert(a, &root, []byte(k), i)
		}

		Convey("When ranging over the full key space", func() {
			var got []string

			Range[int](root, []byte{0x00}, []byte{0xff}, func(key []byte, value *int) bool {
				got = append(got, string(key))

				return false
			})

			Convey("Then every key is returned in ascending order", func() {
				So(got, ShouldResemble, []string{"apple", "avocado", "banana", "blueberry", "cherry", "date"})
			})
		})

		Convey("When ranging over a bounded window", func() {
			var got []string

			Range[int](root, []byte("b"), []byte("c"), func(key []byte, value *int) bool {
				got = append(got, string(key))

				return false
			})

			Convey("Then only keys within the window are returned", func() {
				So(got, ShouldResemble, []string{"banana", "blueberry"})
			})
		})

		Convey("When the window matches no keys", func() {
			var got []string

			Range[int](root, []byte("x"), []byte("z"), func(key []byte, value *int) bool {
				got = append(got, string(key))

				return false
			})

			Convey("Then the callback is never invoked", func() {
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When the callback stops early", func() {
			count := 0

			Range[int](root, []byte{0x00}, []byte{0xff}, func(key []byte, value *int) bool {
				count++

				return true
			})

			Convey("Then only the first matching key is visited", func() {
				So(count, ShouldEqual, 1)
			})
		})
	})

	Convey("Given an empty tree", t, func() {
		var root node.Ref[int]

		visited := false
		Range[int](root, []byte{0x00}, []byte{0xff}, func([]byte, *int) bool {
			visited = true

			return false
		})

		So(visited, ShouldBeFalse)
	})
}
