package audit_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"launchgate/internal/audit"
	"launchgate/internal/audit/mocks"
	"launchgate/pkg/platform/sentinel"
)

var fixedTime = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func TestEntry_String(t *testing.T) {
	tests := []struct {
		name     string
		entry    audit.Entry
		expected string
	}{
		{
			name:     "non-compliance names the group index",
			entry:    audit.NonCompliance(3, "exchange", "source_not_allowed"),
			expected: "Non-compliant transaction detected in component 3",
		},
		{
			name:     "compliant summary",
			entry:    audit.Summary(fixedTime, true),
			expected: "Audit completed at 2026-10-18T09:30:00Z Compliance: YES",
		},
		{
			name:     "non-compliant summary",
			entry:    audit.Summary(fixedTime, false),
			expected: "Audit completed at 2026-10-18T09:30:00Z Compliance: NO",
		},
		{
			name:     "summary is rendered in UTC",
			entry:    audit.Summary(fixedTime.In(time.FixedZone("UTC+2", 2*60*60)), true),
			expected: "Audit completed at 2026-10-18T09:30:00Z Compliance: YES",
		},
		{
			name:     "launch confirmation",
			entry:    audit.LaunchConfirmed(fixedTime),
			expected: "Mainnet launched successfully.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.String())
		})
	}
}

func TestLog_RenderedTrail(t *testing.T) {
	log := audit.NewLog()
	log.Append(
		audit.NonCompliance(0, "exchange", "source_not_allowed"),
		audit.NonCompliance(2, "mining", "value_mismatch"),
		audit.Summary(fixedTime, false),
		audit.Summary(fixedTime.Add(time.Minute), true),
		audit.LaunchConfirmed(fixedTime.Add(time.Minute)),
	)

	g := goldie.New(t)
	g.Assert(t, "trail", []byte(strings.Join(log.Lines(), "\n")+"\n"))
}

func TestLog_AppendOnly(t *testing.T) {
	log := audit.NewLog()
	view := log.View()
	assert.Equal(t, 0, view.Len())

	log.Append(audit.NonCompliance(0, "exchange", "source_not_allowed"))
	log.Append(audit.Summary(fixedTime, false))

	require.Equal(t, 2, view.Len(), "view must reflect live appends")
	assert.Equal(t, audit.KindNonCompliance, view.At(0).Kind)
	assert.Equal(t, audit.KindSummary, view.At(1).Kind)

	t.Run("entries copy cannot mutate the log", func(t *testing.T) {
		entries := view.Entries()
		entries[0] = audit.LaunchConfirmed(fixedTime)
		assert.Equal(t, audit.KindNonCompliance, view.At(0).Kind)
	})

	t.Run("lines copy cannot mutate the log", func(t *testing.T) {
		lines := view.Lines()
		lines[0] = "tampered"
		assert.Equal(t, "Non-compliant transaction detected in component 0", view.Lines()[0])
	})

	t.Run("view does not expose Append", func(t *testing.T) {
		_, ok := view.(interface{ Append(...audit.Entry) })
		assert.False(t, ok)
	})
}

func TestPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("nil store returns error", func(t *testing.T) {
		_, err := audit.NewPublisher(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "audit store is required")
	})

	t.Run("stamps records and preserves order", func(t *testing.T) {
		store := audit.NewInMemoryStore()
		pub, err := audit.NewPublisher(store)
		require.NoError(t, err)

		require.NoError(t, pub.Emit(ctx, audit.NonCompliance(1, "exchange", "source_not_allowed")))
		require.NoError(t, pub.Emit(ctx, audit.Summary(fixedTime, false)))

		records, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.NotEqual(t, uuid.Nil, records[0].ID)
		assert.NotEqual(t, records[0].ID, records[1].ID)
		assert.False(t, records[0].EmittedAt.IsZero())
		assert.Equal(t, audit.KindNonCompliance, records[0].Entry.Kind)
		assert.Equal(t, audit.KindSummary, records[1].Entry.Kind)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		storeErr := errors.New("disk full")
		store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(storeErr)

		pub, err := audit.NewPublisher(store)
		require.NoError(t, err)

		err = pub.Emit(ctx, audit.LaunchConfirmed(fixedTime))
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestInMemoryStore_Queries(t *testing.T) {
	ctx := context.Background()
	store := audit.NewInMemoryStore()
	for i, e := range []audit.Entry{
		audit.NonCompliance(0, "exchange", "source_not_allowed"),
		audit.Summary(fixedTime, false),
		audit.Summary(fixedTime, true),
		audit.LaunchConfirmed(fixedTime),
	} {
		require.NoError(t, store.Append(ctx, audit.Record{ID: uuid.New(), EmittedAt: fixedTime.Add(time.Duration(i) * time.Second), Entry: e}))
	}

	summaries, err := store.ListByKind(ctx, audit.KindSummary)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	recent, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, audit.KindLaunchConfirmed, recent[1].Entry.Kind)

	all, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	for _, limit := range []int{0, -1, -10} {
		t.Run(fmt.Sprintf("limit %d returns nothing", limit), func(t *testing.T) {
			var got []audit.Record
			require.NotPanics(t, func() {
				got, err = store.ListRecent(ctx, limit)
			})
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestInMemoryStore_ListRecentOnEmptyStore(t *testing.T) {
	got, err := audit.NewInMemoryStore().ListRecent(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPublisher_Clock(t *testing.T) {
	ctx := context.Background()
	store := audit.NewInMemoryStore()
	pub, err := audit.NewPublisher(store, audit.WithPublisherClock(func() time.Time { return fixedTime }))
	require.NoError(t, err)

	require.NoError(t, pub.Emit(ctx, audit.Summary(fixedTime, true)))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, fixedTime, records[0].EmittedAt)
}

func TestParseKind(t *testing.T) {
	for _, k := range audit.Kinds {
		got, err := audit.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := audit.ParseKind("warning")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
}
