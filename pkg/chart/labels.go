package chart

import "fmt"

// Labels turns category values into axis labels, keeping their order.
func Labels[T any](vals []T) []string {
	res := make([]string, len(vals))
	for i, v := range vals {
		res[i] = fmt.Sprint(v)
	}
	return res
}
