package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	main "github.com/fwojciec/ao3/cmd/ao3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "ao3")
	assert.Contains(t, stdout.String(), "work")
	assert.Contains(t, stdout.String(), "tag")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"bookmarks"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_URL(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"url", "123", "--chapter", "4", "--collection", "abc"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "https://archiveofourown.org/collections/abc/works/123/chapters/4\n", stdout.String())
}

func newArchiveServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/tags/Fluff/works", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a class="rss" href="/tags/414093/feed.atom">RSS</a></body></html>`))
	})
	mux.HandleFunc("/tags/414093/feed.atom", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Fluff</title>
  <entry>
    <updated>2024-05-02T10:00:00Z</updated>
    <link rel="alternate" type="text/html" href="https://archiveofourown.org/works/42"/>
    <title>Answer</title>
  </entry>
</feed>`))
	})
	mux.HandleFunc("/works/42", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "view_adult=true;" {
			_, _ = w.Write([]byte(`<p class="caution">This work could have adult content.</p>`))
			return
		}
		_, _ = w.Write([]byte(`<html><body>
<dl class="work meta group">
	<dd class="rating tags"><a class="tag">General Audiences</a></dd>
	<dd class="fandom tags"><a class="tag">Original Work</a></dd>
	<dd class="language">English</dd>
	<dd class="words">42</dd>
</dl>
<h2 class="title heading">Answer</h2>
<h3 class="byline heading"><a rel="author" href="/users/deep/pseuds/Deep%20Thought">Deep Thought</a></h3>
<div class="summary module"><blockquote class="userstuff"><p>The <em>answer</em>.</p></blockquote></div>
</body></html>`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestMain_Run_Tag(t *testing.T) {
	t.Parallel()

	server := newArchiveServer(t)
	m := &main.Main{BaseURL: server.URL, UserAgent: "test"}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"tag", "Fluff"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "414093\n", stdout.String())
	assert.Contains(t, stderr.String(), "works feed")
}

func TestMain_Run_Work(t *testing.T) {
	t.Parallel()

	server := newArchiveServer(t)
	m := &main.Main{BaseURL: server.URL, UserAgent: "test"}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"work", "--rate", "0", "--markdown", "42"}, &stdout, &stderr)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "42", got["id"])
	assert.Equal(t, "Answer", got["title"])
	assert.Equal(t, float64(42), got["word_count"])
	assert.Equal(t, "General Audiences", got["rating"])
	assert.Equal(t, []any{"Original Work"}, got["fandoms"])
	assert.Nil(t, got["category"])
	assert.Equal(t, []any{map[string]any{"username": "deep", "pseud": "Deep Thought"}}, got["authors"])
	assert.Equal(t, "The *answer*.", got["summary"])
}

func TestMain_Run_WorkNotFound(t *testing.T) {
	t.Parallel()

	server := newArchiveServer(t)
	m := &main.Main{BaseURL: server.URL, UserAgent: "test"}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"work", "--rate", "0", "7"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "HTTP 404")
}

func TestMain_Run_FeedByName(t *testing.T) {
	t.Parallel()

	server := newArchiveServer(t)
	m := &main.Main{BaseURL: server.URL, UserAgent: "test"}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"feed", "--by-name", "Fluff"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "42\tAnswer", strings.TrimSpace(stdout.String()))
}
