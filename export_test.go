package gigasheet

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"
)

func TestCreateExport(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataset/"+testHandle+"/export" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body = decodeBody(t, r)
		io.WriteString(w, `{"handle":"export-handle"}`)
	}))

	handle, err := client.CreateExport(context.Background(), testHandle,
		map[string]any{"sortModel": []any{}}, nil)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(handle).Should(gomega.Equal("export-handle"))
	g.Expect(body).Should(gomega.Equal(map[string]any{
		"filename":     "export.csv",
		"folderHandle": "",
		"gridState":    map[string]any{"sortModel": []any{}},
	}))
}

func TestCreateExportCurrentState(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dataset/" + testHandle:
			io.WriteString(w, `{"Status":"processed","ClientState":{"filterModel":{"_cnf_":[]}}}`)
		case "/dataset/" + testHandle + "/export":
			body = decodeBody(t, r)
			io.WriteString(w, `{"handle":"export-handle"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	handle, err := client.CreateExportCurrentState(context.Background(), testHandle,
		&ExportOptions{Name: "snapshot.csv", FolderHandle: "folder-1"})
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(handle).Should(gomega.Equal("export-handle"))
	g.Expect(body["filename"]).Should(gomega.Equal("snapshot.csv"))
	g.Expect(body["folderHandle"]).Should(gomega.Equal("folder-1"))
	g.Expect(body["gridState"]).Should(gomega.Equal(map[string]any{"filterModel": map[string]any{"_cnf_": []any{}}}))
}

func TestDownloadExport(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataset/export-handle/download-export" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"presignedUrl":"https://s3.example.com/export.zip?sig=abc"}`)
	}))

	url, err := client.DownloadExport(context.Background(), "export-handle")
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(url).Should(gomega.Equal("https://s3.example.com/export.zip?sig=abc"))
}

func TestDownloadExportToFile(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	payload := "col1,col2\na,b\n"
	bucket := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, payload)
	}))
	t.Cleanup(bucket.Close)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"presignedUrl":"`+bucket.URL+`/export.csv"}`)
	}))

	path := filepath.Join(t.TempDir(), "export.csv")
	err := client.DownloadExportToFile(context.Background(), "export-handle", path)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())

	data, err := os.ReadFile(path)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(string(data)).Should(gomega.Equal(payload))

	// Existing files are never overwritten.
	err = client.DownloadExportToFile(context.Background(), "export-handle", path)
	g.Expect(err).Should(gomega.HaveOccurred())
}
