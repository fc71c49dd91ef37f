package compare_test

import (
	"strings"
	"testing"

	"go.llib.dev/funcwire/compare"
	"go.llib.dev/funcwire/function"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type person struct {
	Name string
	Age  int
}

func TestNatural(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("orders by the < operator of the value type", func(t *testcase.T) {
		o := compare.Natural[int]()
		assert.Equal(t, -1, o.Compare(3, 5))
		assert.Equal(t, 1, o.Compare(5, 3))
		assert.Equal(t, 0, o.Compare(4, 4))
	})

	s.Test("works with strings", func(t *testcase.T) {
		o := compare.Natural[string]()
		assert.True(t, compare.IsLess(o.Compare("Apple", "Banana")))
	})
}

func TestReverse(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("orders by the inverse of the < operator", func(t *testcase.T) {
		o := compare.Reverse[int]()
		assert.Equal(t, 1, o.Compare(3, 5))
		assert.Equal(t, -1, o.Compare(5, 3))
		assert.Equal(t, 0, o.Compare(4, 4))
	})

	s.Test("agrees with the reversed natural ordering on any input", func(t *testcase.T) {
		a, b := t.Random.Int(), t.Random.Int()

		assert.Equal(t,
			compare.Reverse[int]().Compare(a, b),
			compare.Reversed(compare.Natural[int]()).Compare(a, b))
	})
}

func TestReversed(t *testing.T) {
	s := testcase.NewSpec(t)

	base := testcase.Let(s, func(t *testcase.T) compare.Interface[int] {
		return compare.Natural[int]()
	})
	subject := let.Act(func(t *testcase.T) compare.Interface[int] {
		return compare.Reversed(base.Get(t))
	})

	s.Then("it compares with the base ordering on swapped arguments", func(t *testcase.T) {
		a, b := t.Random.Int(), t.Random.Int()

		assert.Equal(t, base.Get(t).Compare(b, a), subject(t).Compare(a, b))
	})

	s.Then("reversing twice restores the original ordering", func(t *testcase.T) {
		twice := compare.Reversed(subject(t))

		a, b := t.Random.Int(), t.Random.Int()
		assert.Equal(t, base.Get(t).Compare(a, b), twice.Compare(a, b))
	})

	s.When("the base ordering is not normalised to -1/0/1", func(s *testcase.Spec) {
		base.Let(s, func(t *testcase.T) compare.Interface[int] {
			return compare.Func[int](func(a, b int) int { return a - b })
		})

		s.Then("the sign is still inverted", func(t *testcase.T) {
			assert.True(t, compare.IsGreater(subject(t).Compare(1, 5)))
			assert.True(t, compare.IsLess(subject(t).Compare(5, 1)))
			assert.True(t, compare.IsEqual(subject(t).Compare(3, 3)))
		})
	})

	s.Test("missing ordering is refused", func(t *testcase.T) {
		assert.Panic(t, func() { _ = compare.Reversed[int](nil) })
	})
}

func TestThenComparing(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		secondaryUses = testcase.LetValue(s, 0)
		primary       = testcase.Let(s, func(t *testcase.T) compare.Interface[int] {
			return compare.Func[int](func(int, int) int { return 0 })
		})
		secondary = testcase.Let(s, func(t *testcase.T) compare.Interface[int] {
			return compare.Func[int](func(a, b int) int {
				secondaryUses.Set(t, secondaryUses.Get(t)+1)
				return compare.Numbers(a, b)
			})
		})
	)
	subject := let.Act(func(t *testcase.T) compare.Interface[int] {
		return compare.ThenComparing(primary.Get(t), secondary.Get(t))
	})

	s.When("the primary ordering always ties", func(s *testcase.Spec) {
		s.Then("the result equals the secondary ordering's result", func(t *testcase.T) {
			a, b := t.Random.Int(), t.Random.Int()

			assert.Equal(t, compare.Numbers(a, b), subject(t).Compare(a, b))
		})
	})

	s.When("the primary ordering decides", func(s *testcase.Spec) {
		primary.Let(s, func(t *testcase.T) compare.Interface[int] {
			return compare.Natural[int]()
		})

		s.Then("the primary result is returned as is", func(t *testcase.T) {
			assert.Equal(t, -1, subject(t).Compare(1, 2))
			assert.Equal(t, 1, subject(t).Compare(2, 1))
		})

		s.Then("the secondary ordering is not consulted", func(t *testcase.T) {
			subject(t).Compare(1, 2)

			assert.Equal(t, 0, secondaryUses.Get(t))
		})

		s.Then("on a tie the secondary ordering breaks it", func(t *testcase.T) {
			v := t.Random.Int()
			subject(t).Compare(v, v)

			assert.Equal(t, 1, secondaryUses.Get(t))
		})
	})

	s.Test("missing orderings are refused", func(t *testcase.T) {
		assert.Panic(t, func() { _ = compare.ThenComparing[int](nil, secondary.Get(t)) })
		assert.Panic(t, func() { _ = compare.ThenComparing[int](primary.Get(t), nil) })
	})
}

func TestComparing(t *testing.T) {
	s := testcase.NewSpec(t)

	byAge := func() compare.Interface[person] {
		return compare.Comparing[person, int](function.Func[person, int](func(p person) int {
			return p.Age
		}))
	}

	s.Test("orders by the extracted key's natural order", func(t *testcase.T) {
		young := person{Name: "Kate", Age: 21}
		old := person{Name: "Joe", Age: 42}

		assert.True(t, compare.IsLess(byAge().Compare(young, old)))
		assert.True(t, compare.IsGreater(byAge().Compare(old, young)))
		assert.True(t, compare.IsEqual(byAge().Compare(old, old)))
	})

	s.Test("missing key function is refused", func(t *testcase.T) {
		assert.Panic(t, func() { _ = compare.Comparing[person, int](nil) })
	})
}

func TestComparingBy(t *testing.T) {
	s := testcase.NewSpec(t)

	nameOf := function.Func[person, string](func(p person) string {
		return p.Name
	})

	s.Test("orders by the extracted key using the given key ordering", func(t *testcase.T) {
		o := compare.ComparingBy[person, string](nameOf, compare.Reverse[string]())

		assert.True(t, compare.IsGreater(o.Compare(person{Name: "a"}, person{Name: "b"})))
		assert.True(t, compare.IsLess(o.Compare(person{Name: "b"}, person{Name: "a"})))
	})

	s.Test("missing arguments are refused", func(t *testcase.T) {
		assert.Panic(t, func() { _ = compare.ComparingBy[person, string](nil, compare.Natural[string]()) })
		assert.Panic(t, func() { _ = compare.ComparingBy[person, string](nameOf, nil) })
	})
}

func TestThenComparingBy(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		ageOf = function.Func[person, int](func(p person) int {
			return p.Age
		})
		nameOf = function.Func[person, string](func(p person) string {
			return p.Name
		})
		byAge = compare.Comparing[person, int](ageOf)
	)

	s.Test("ties of the primary ordering are broken by the key", func(t *testcase.T) {
		o := compare.ThenComparingBy[person, string](byAge, nameOf, compare.Natural[string]())

		a := person{Name: "Ann", Age: 42}
		b := person{Name: "Bob", Age: 42}
		assert.True(t, compare.IsLess(o.Compare(a, b)))
		assert.True(t, compare.IsGreater(o.Compare(b, a)))
	})

	s.Test("a deciding primary ordering wins over the key", func(t *testcase.T) {
		o := compare.ThenComparingOrdered[person, string](byAge, nameOf)

		younger := person{Name: "Zoe", Age: 21}
		older := person{Name: "Ann", Age: 42}
		assert.True(t, compare.IsLess(o.Compare(younger, older)))
	})

	s.Test("missing arguments are refused", func(t *testcase.T) {
		assert.Panic(t, func() { _ = compare.ThenComparingBy[person, string](nil, nameOf, compare.Natural[string]()) })
		assert.Panic(t, func() { _ = compare.ThenComparingBy[person, string](byAge, nil, compare.Natural[string]()) })
		assert.Panic(t, func() { _ = compare.ThenComparingOrdered[person, string](nil, nameOf) })
	})
}

func TestNulls(t *testing.T) {
	s := testcase.NewSpec(t)

	value := testcase.Let(s, func(t *testcase.T) *string {
		v := t.Random.String()
		return &v
	})

	s.Describe("NullsFirst", func(s *testcase.Spec) {
		subject := let.Act(func(t *testcase.T) compare.Interface[*string] {
			return compare.NullsFirst[string](compare.Natural[string]())
		})

		s.Then("two nils compare equal", func(t *testcase.T) {
			assert.Equal(t, 0, subject(t).Compare(nil, nil))
		})

		s.Then("nil sorts before every non-nil value", func(t *testcase.T) {
			assert.True(t, compare.IsLess(subject(t).Compare(nil, value.Get(t))))
			assert.True(t, compare.IsGreater(subject(t).Compare(value.Get(t), nil)))
		})

		s.Then("non-nil pairs use the wrapped ordering", func(t *testcase.T) {
			a, b := "alpha", "beta"

			assert.Equal(t,
				compare.Strings(a, b),
				subject(t).Compare(&a, &b))
		})
	})

	s.Describe("NullsLast", func(s *testcase.Spec) {
		subject := let.Act(func(t *testcase.T) compare.Interface[*string] {
			return compare.NullsLast[string](compare.Natural[string]())
		})

		s.Then("two nils compare equal", func(t *testcase.T) {
			assert.Equal(t, 0, subject(t).Compare(nil, nil))
		})

		s.Then("nil sorts after every non-nil value", func(t *testcase.T) {
			assert.True(t, compare.IsGreater(subject(t).Compare(nil, value.Get(t))))
			assert.True(t, compare.IsLess(subject(t).Compare(value.Get(t), nil)))
		})
	})

	s.Test("sorting moves nils to the requested end", func(t *testcase.T) {
		a, b := "a", "b"
		values := []*string{&b, nil, &a, nil}

		compare.Sort(values, compare.NullsFirst[string](compare.Natural[string]()))
		assert.Equal(t, []*string{nil, nil, &a, &b}, values)

		compare.Sort(values, compare.NullsLast[string](compare.Natural[string]()))
		assert.Equal(t, []*string{&a, &b, nil, nil}, values)
	})

	s.Test("missing ordering is refused", func(t *testcase.T) {
		assert.Panic(t, func() { _ = compare.NullsFirst[string](nil) })
		assert.Panic(t, func() { _ = compare.NullsLast[string](nil) })
	})
}

func TestCombinators_composedOrderingSortsRealistically(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("sort by age, ties by lowercased name", func(t *testcase.T) {
		byAgeThenName := compare.ThenComparingBy[person, string](
			compare.Comparing[person, int](function.Func[person, int](func(p person) int {
				return p.Age
			})),
			function.Func[person, string](func(p person) string {
				return strings.ToLower(p.Name)
			}),
			compare.Natural[string](),
		)

		people := []person{
			{Name: "bob", Age: 42},
			{Name: "Ann", Age: 42},
			{Name: "Zoe", Age: 21},
		}
		compare.Sort(people, byAgeThenName)

		assert.Equal(t, []person{
			{Name: "Zoe", Age: 21},
			{Name: "Ann", Age: 42},
			{Name: "bob", Age: 42},
		}, people)
	})
}
