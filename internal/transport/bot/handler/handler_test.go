package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/value"
)

func TestCommandArgs(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "No args", text: "/deals", want: ""},
		{name: "One word", text: "/search portal", want: "portal"},
		{name: "Several words", text: "/search  portal 2 ", want: "portal 2"},
		{name: "Bot mention", text: "/search@deals_bot doom", want: "doom"},
		{name: "Newline", text: "/prices\nbatman", want: "batman"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, commandArgs(tc.text))
		})
	}
}

func TestParseBound(t *testing.T) {
	testCases := []struct {
		name    string
		arg     string
		upper   float64
		want    float64
		wantErr bool
	}{
		{name: "Integer", arg: "75", upper: entity.MaxRating, want: 75},
		{name: "Upper edge", arg: "10", upper: entity.MaxPrice, want: 10},
		{name: "Zero", arg: "0", upper: entity.MaxPrice, want: 0},
		{name: "Decimal comma", arg: "2,5", upper: entity.MaxPrice, want: 2.5},
		{name: "Above range", arg: "101", upper: entity.MaxRating, wantErr: true},
		{name: "Negative", arg: "-1", upper: entity.MaxPrice, wantErr: true},
		{name: "NaN", arg: "NaN", upper: entity.MaxPrice, wantErr: true},
		{name: "Empty", arg: "", upper: entity.MaxPrice, wantErr: true},
		{name: "Text", arg: "cheap", upper: entity.MaxPrice, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := parseBound(tc.arg, tc.upper)
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.InDelta(tc.want, got, 0)
		})
	}
}

func TestParseIndex(t *testing.T) {
	rq := require.New(t)

	n, err := parseIndex(" 3 ")
	rq.NoError(err)
	rq.Equal(3, n)

	_, err = parseIndex("0")
	rq.Error(err)

	_, err = parseIndex("first")
	rq.Error(err)
}

func TestSessionDefaults(t *testing.T) {
	rq := require.New(t)

	sessions := NewSessions(time.Hour)

	sess := sessions.Get(1)
	rq.Equal(entity.DefaultFilterSortConfig(), sess.Config())

	sess.UpdateConfig(func(cfg *entity.FilterSortConfig) {
		cfg.SearchQuery = "doom"
	})

	rq.Same(sess, sessions.Get(1))
	rq.Equal("doom", sessions.Get(1).Config().SearchQuery)
	rq.Empty(sessions.Get(2).Config().SearchQuery)
}

func TestSessionShown(t *testing.T) {
	rq := require.New(t)

	sess := newSession()

	a, b := value.NewDealID(), value.NewDealID()
	sess.SetShown([]entity.Deal{{ID: a}, {ID: b}})

	id, ok := sess.Shown(1)
	rq.True(ok)
	rq.Equal(a, id)

	id, ok = sess.Shown(2)
	rq.True(ok)
	rq.Equal(b, id)

	_, ok = sess.Shown(0)
	rq.False(ok)

	_, ok = sess.Shown(3)
	rq.False(ok)
}

func TestSessionBeginDetailsCancelsPrevious(t *testing.T) {
	rq := require.New(t)

	sess := newSession()

	first, doneFirst := sess.BeginDetails(context.Background())
	second, doneSecond := sess.BeginDetails(context.Background())

	rq.ErrorIs(first.Err(), context.Canceled)
	rq.NoError(second.Err())

	// Finishing the stale fetch must not release the newer one.
	doneFirst()
	rq.NotNil(sess.cancelDetails)
	rq.NoError(second.Err())

	doneSecond()
	rq.Nil(sess.cancelDetails)
	rq.ErrorIs(second.Err(), context.Canceled)
}
