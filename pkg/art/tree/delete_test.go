package tree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
	. "github.com/flier/radixart/pkg/art/tree"
)

func TestDelete(t *testing.T) {
	Convey("Given Delete", t, func() {
		a := new(arena.Arena)
		rec := arena.NewRecycled(a)

		Convey("When deleting from an empty tree", func() {
			var root node.Ref[int]

			result := Delete(rec, &root, []byte("hello"))

			So(result, ShouldBeNil)
			So(root.Empty(), ShouldBeTrue)
		})

		Convey("When deleting the sole leaf of a tree", func() {
			var root node.Ref[int]
			Insert(a, &root, hello, 123)

			Convey("And the key matches", func() {
				result := Delete(rec, &root, hello)

				So(result, ShouldNotBeNil)
				So(result.Key, ShouldResemble, hello)
				So(result.Value, ShouldEqual, 123)
				So(root.Empty(), ShouldBeTrue)
			})

			Convey("And the key does not match", func() {
				result := Delete(rec, &root, []byte("world"))

				So(result, ShouldBeNil)
				So(root.Empty(), ShouldBeFalse)
			})
		})

		Convey("When deleting a key under a Node4", func() {
			var root node.Ref[int]
			Insert(a, &root, hello, 123)
			Insert(a, &root, help, 456)

			Convey("Then removing one child collapses the Node4 into the remaining leaf", func() {
				result := Delete(rec, &root, help)

				So(result, ShouldNotBeNil)
				So(result.Key, ShouldResemble, help)

				leaf := root.AsLeaf()
				So(leaf, ShouldNotBeNil)
				So(leaf.Key, ShouldResemble, hello)
			})

			Convey("Then a non-existent key sharing the prefix misses", func() {
				result := Delete(rec, &root, []byte("held"))

				So(result, ShouldBeNil)
				So(root.AsNode4().NumChildren, ShouldEqual, 2)
			})

			Convey("Then a key not sharing the prefix misses", func() {
				result := Delete(rec, &root, []byte("world"))

				So(result, ShouldBeNil)
				So(root.AsNode4().NumChildren, ShouldEqual, 2)
			})
		})

		Convey("When deleting shrinks a Node16 back to a Node4", func() {
			var root node.Ref[int]

			keys := [][]byte{{'a'}, {'b'}, {'c'}, {'d'}, {'e'}}
			for i, k := range keys {
				Insert(a, &root, k, i)
			}
			So(root.AsNode16(), ShouldNotBeNil)

			Delete(rec, &root, []byte{'e'})

			n4 := root.AsNode4()
			So(n4, ShouldNotBeNil)
			So(n4.NumChildren, ShouldEqual, 4)
			for _, k := range keys[:4] {
				So(n4.FindChild(k[0]), ShouldNotBeNil)
			}
		})

		Convey("When deleting a key with a long shared prefix", func() {
			var root node.Ref[int]

			prefix := make([]byte, 40)
			for i := range prefix {
				prefix[i] = 'a'
			}
			key1 := append(append([]byte{}, prefix...), 'x')
			key2 := append(append([]byte{}, prefix...), 'y')

			Insert(a, &root, key1, 1)
			Insert(a, &root, key2, 2)

			result := Delete(rec, &root, key1)

			So(result, ShouldNotBeNil)
			So(result.Value, ShouldEqual, 1)

			leaf := root.AsLeaf()
			So(leaf, ShouldNotBeNil)
			So(leaf.Key, ShouldResemble, key2)

			So(Search(root, key1), ShouldBeNil)
			So(Search(root, key2), ShouldNotBeNil)
		})
	})
}
