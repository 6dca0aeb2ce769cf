package core_test

import (
	"testing"

	"github.com/katalvlaran/lvwalk/core"
	"github.com/stretchr/testify/assert"
)

func TestLabelFor(t *testing.T) {
	cases := []struct {
		idx  int
		want string
	}{
		{-1, ""},
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, core.LabelFor(tc.idx), "idx=%d", tc.idx)
	}
}
