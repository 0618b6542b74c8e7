package gigasheet

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/onsi/gomega"
)

// base64 of testdata/sample-local-upload.csv
const sampleUploadBase64 = "bm90LHJlYWwKdGVzdCxmaWxl"

func uploadHandler(t *testing.T, wantPath string, gotBody *map[string]any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("unexpected path %s, want %s", r.URL.Path, wantPath)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		*gotBody = decodeBody(t, r)
		io.WriteString(w, `{"Handle":"new-handle"}`)
	})
}

func TestUploadFile(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, uploadHandler(t, "/upload/direct", &body))

	handle, err := client.UploadFile(context.Background(), "testdata/sample-local-upload.csv", "mock file upload", nil)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(handle).Should(gomega.Equal("new-handle"))
	g.Expect(body).Should(gomega.Equal(map[string]any{
		"name":            "mock file upload",
		"contents":        sampleUploadBase64,
		"parentDirectory": "",
	}))
}

func TestUploadFileAppend(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, uploadHandler(t, "/upload/direct", &body))

	_, err := client.UploadFile(context.Background(), "testdata/sample-local-upload.csv", "mock file upload",
		&UploadOptions{AppendTo: testHandle})
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(body).Should(gomega.Equal(map[string]any{
		"name":            "mock file upload",
		"contents":        sampleUploadBase64,
		"parentDirectory": "",
		"targetHandle":    testHandle,
	}))
}

func TestUploadFileMissing(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a missing local file")
	}))
	_, err := client.UploadFile(context.Background(), "testdata/does-not-exist.csv", "x", nil)
	g.Expect(err).Should(gomega.HaveOccurred())
}

func TestUploadReader(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, uploadHandler(t, "/upload/direct", &body))

	_, err := client.UploadReader(context.Background(), strings.NewReader("not,real\ntest,file"), "piped upload", nil)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(body["contents"]).Should(gomega.Equal(sampleUploadBase64))
	g.Expect(body["name"]).Should(gomega.Equal("piped upload"))
}

func TestUploadURL(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, uploadHandler(t, "/upload/url", &body))

	handle, err := client.UploadURL(context.Background(), "https://gigasheet.com/nothing", "mock url upload", nil)
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(handle).Should(gomega.Equal("new-handle"))
	g.Expect(body).Should(gomega.Equal(map[string]any{
		"name": "mock url upload",
		"url":  "https://gigasheet.com/nothing",
	}))
}

func TestUploadURLAppend(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)

	var body map[string]any
	client := newTestClient(t, uploadHandler(t, "/upload/url", &body))

	_, err := client.UploadURL(context.Background(), "https://gigasheet.com/nothing", "mock url upload",
		&UploadOptions{AppendTo: testHandle})
	g.Expect(err).ShouldNot(gomega.HaveOccurred())
	g.Expect(body["targetHandle"]).Should(gomega.Equal(testHandle))
}
