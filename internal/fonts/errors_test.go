package fonts

import (
	"errors"
	"strings"
	"testing"
)

func TestFetchErrorMessage(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &FetchError{URL: FontURL, Err: underlying}

	if !strings.Contains(err.Error(), FontURL) {
		t.Errorf("Error() = %q, want the URL included", err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Error("FetchError does not unwrap to the underlying error")
	}
}

func TestIntegrityErrorMessage(t *testing.T) {
	err := &IntegrityError{Expected: "aaa", Actual: "bbb"}

	msg := err.Error()
	if !strings.Contains(msg, "expected aaa") || !strings.Contains(msg, "got bbb") {
		t.Errorf("Error() = %q, want both digests included", msg)
	}
}

func TestWriteErrorMessage(t *testing.T) {
	underlying := errors.New("disk full")
	err := &WriteError{Path: "/some/target.ttf", Err: underlying}

	if !strings.Contains(err.Error(), "/some/target.ttf") {
		t.Errorf("Error() = %q, want the path included", err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Error("WriteError does not unwrap to the underlying error")
	}
}
