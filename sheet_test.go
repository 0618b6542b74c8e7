package gigasheet

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/onsi/gomega"
)

func TestInfo(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataset/"+testHandle {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"Handle":"`+testHandle+`","FileName":"data.csv","Status":"processed","ClientState":{"sortModel":[]}}`)
	}))

	info, err := client.Info(context.Background(), testHandle)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(info.FileName).Should(gomega.Equal("data.csv"))
	g.Expect(info.Status).Should(gomega.Equal(StatusProcessed))
	g.Expect(info.ClientState).Should(gomega.HaveKey("sortModel"))

	_, err = client.Info(context.Background(), "")
	g.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring("empty value for handle")))
}

func TestRename(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rename/"+testHandle || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body = decodeBody(t, r)
	}))

	err := client.Rename(context.Background(), testHandle, "renamed.csv")
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(body).Should(gomega.Equal(map[string]any{
		"uuid":     testHandle,
		"filename": "renamed.csv",
	}))
}

func TestSetDescription(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataset/"+testHandle+"/note" || r.Method != http.MethodPut {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body = decodeBody(t, r)
	}))

	err := client.SetDescription(context.Background(), testHandle, "a great description")
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(body).Should(gomega.Equal(map[string]any{"note": "a great description"}))
}

func TestSheetURL(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	client, err := NewClientWithOptions(ClientOptions{APIKey: "k"})
	g.Expect(err).ShouldNot(gomega.HaveOccurred())

	url := client.SheetURL(testHandle)
	g.Expect(url).Should(gomega.Equal("https://app.gigasheet.com/spreadsheet/id/" + testHandle))

	handle, err := client.HandleFromURL(url)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(handle).Should(gomega.Equal(testHandle))

	// Shared links carry the handle in the same position.
	handle, err = client.HandleFromURL("https://app.gigasheet.com/spreadsheet/shared/" + testHandle)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(handle).Should(gomega.Equal(testHandle))

	_, err = client.HandleFromURL("https://example.com/spreadsheet/id/" + testHandle)
	g.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring("complete URL")))

	_, err = client.HandleFromURL("https://app.gigasheet.com/spreadsheet/id/")
	g.Expect(err).Should(gomega.MatchError(gomega.ContainSubstring("no handle found")))
}
