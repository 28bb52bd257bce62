package csvout

import (
	"bytes"
	"testing"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	tickets := [][]int{
		{1, 5, 12, 23, 34, 43},
		{2, 8, 19, 21, 30, 41},
	}

	if err := Write(&buf, tickets, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "draw,n1,n2,n3,n4,n5,n6\n" +
		"1,1,5,12,23,34,43\n" +
		"2,2,8,19,21,30,41\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteEmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "draw,n1,n2,n3,n4,n5,n6,n7\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
