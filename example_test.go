package accord_test

import (
	"fmt"
	"time"

	v "github.com/wix/accord"
)

func ExampleValidator() {
	rule := v.All(
		v.NotEmpty[[]string](),
		v.Each(v.In("ach", "cc", "wire")),
	)

	result := rule.Validate([]string{"ach", "paypal"})
	for _, violation := range result.Violations() {
		fmt.Println(violation)
	}
	// Output: 1: 'paypal' must be one of 'ach', 'cc', 'wire' got 'paypal'
}

func ExampleBefore() {
	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rule := v.Before(deadline)

	ok := rule.Validate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	fmt.Println(ok.IsSuccess())
	// Output: true
}

type shipment struct {
	boxes []int
}

func (s shipment) Size() int { return len(s.boxes) }

func ExampleHasSize() {
	rule := v.HasSize[shipment](v.GreaterThan(2))

	result := rule.Validate(shipment{boxes: []int{40, 20}})
	fmt.Println(result.IsFailure())
	fmt.Println(result.Violations()[0].Value)
	// Output:
	// true
	// {[40 20]}
}

func ExampleEachFlatMap() {
	// Validate every leg of every route.
	routes := [][]string{{"tlv", "ams"}, {"ams", "jfk"}}
	rule := v.EachFlatMap(
		func(route []string) []string { return route },
		v.Length(3, 3),
	)

	result := rule.Validate(routes)
	fmt.Println(result.IsSuccess())
	// Output: true
}

func ExampleResult_Err() {
	rule := v.Each(v.In(1, 2, 3))

	err := rule.Validate([]int{1, 9}).Err()
	fmt.Println(err)
	// Output: 1: must be one of '1', '2', '3' got '9'.
}
