package gofeed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/ao3"
	"github.com/fwojciec/ao3/gofeed"
	"github.com/fwojciec/ao3/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ao3.FeedService = (*gofeed.FeedReader)(nil)

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xml:lang="en-US" xmlns="http://www.w3.org/2005/Atom">
  <id>tag:archiveofourown.org,2005:/tags/414093/feed</id>
  <title>AO3 works tagged 'Fluff'</title>
  <updated>2024-05-02T10:00:00Z</updated>
  <entry>
    <id>tag:archiveofourown.org,2005:Work/123</id>
    <published>2024-05-01T09:00:00Z</published>
    <updated>2024-05-02T10:00:00Z</updated>
    <link rel="alternate" type="text/html" href="https://archiveofourown.org/works/123"/>
    <title>The Long Night</title>
    <author><name>alice</name></author>
    <author><name>bob</name></author>
  </entry>
  <entry>
    <id>tag:archiveofourown.org,2005:Work/456</id>
    <published>2024-04-30T09:00:00Z</published>
    <link rel="alternate" type="text/html" href="https://archiveofourown.org/works/456"/>
    <title>Short Day</title>
    <author><name>carol</name></author>
  </entry>
  <entry>
    <id>tag:archiveofourown.org,2005:News/1</id>
    <updated>2024-04-29T09:00:00Z</updated>
    <link rel="alternate" type="text/html" href="https://archiveofourown.org/admin_posts/1"/>
    <title>Site news</title>
  </entry>
</feed>`

func TestFeedReader_Entries(t *testing.T) {
	t.Parallel()

	t.Run("returns work entries in feed order", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, req *ao3.FetchRequest) (string, error) {
				gotURL = req.URL
				return atomFixture, nil
			},
		}

		entries, err := gofeed.NewFeedReader(fetcher).Entries(context.Background(), "414093")
		require.NoError(t, err)

		assert.Equal(t, "https://archiveofourown.org/tags/414093/feed.atom", gotURL)
		require.Len(t, entries, 2)

		assert.Equal(t, "123", entries[0].WorkID)
		assert.Equal(t, "The Long Night", entries[0].Title)
		assert.Equal(t, "https://archiveofourown.org/works/123", entries[0].URL)
		assert.Equal(t, []string{"alice", "bob"}, entries[0].Authors)
		assert.Equal(t, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), entries[0].Updated.UTC())

		assert.Equal(t, "456", entries[1].WorkID)
		assert.Equal(t, []string{"carol"}, entries[1].Authors)
		assert.Equal(t, time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC), entries[1].Updated.UTC())
	})

	t.Run("uses base URL override", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, req *ao3.FetchRequest) (string, error) {
				gotURL = req.URL
				return atomFixture, nil
			},
		}

		reader := gofeed.NewFeedReader(fetcher)
		reader.BaseURL = "http://localhost:9000"
		_, err := reader.Entries(context.Background(), "5")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/tags/5/feed.atom", gotURL)
	})

	t.Run("returns invalid for unparseable feed", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ *ao3.FetchRequest) (string, error) {
				return "this is not a feed", nil
			},
		}

		_, err := gofeed.NewFeedReader(fetcher).Entries(context.Background(), "1")
		require.Error(t, err)
		assert.Equal(t, ao3.EINVALID, ao3.ErrorCode(err))
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ *ao3.FetchRequest) (string, error) {
				return "", errors.New("timeout")
			},
		}

		_, err := gofeed.NewFeedReader(fetcher).Entries(context.Background(), "1")
		assert.EqualError(t, err, "timeout")
	})
}
