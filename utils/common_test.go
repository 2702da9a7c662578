package common

import (
	"errors"
	"strings"
	"testing"
)

type record struct{ id, seq string }

func collect(t *testing.T, in string, opts map[string]interface{}) []record {
	t.Helper()
	var got []record
	err := StreamFastaReader(strings.NewReader(in), func(id, seq string, _ map[string]interface{}) error {
		got = append(got, record{id, seq})
		return nil
	}, opts)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	return got
}

func TestStreamFastaReader(t *testing.T) {
	in := ">a desc\r\nmkv\r\nLA\n>b\n>c\n  HH \n"
	tests := []struct {
		name string
		opts map[string]interface{}
		want []record
	}{
		{"default", nil, []record{{"a desc", "MKVLA"}, {"b", ""}, {"c", "HH"}}},
		{"keep blanks", map[string]interface{}{"keep_blanks": true}, []record{{"a desc", "MKVLA"}, {"b", ""}, {"c", "  HH "}}},
		{"raw case", map[string]interface{}{"raw_case": true}, []record{{"a desc", "mkvLA"}, {"b", ""}, {"c", "HH"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, in, tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records: %v", len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStreamFastaHandlerError(t *testing.T) {
	stop := errors.New("stop")
	err := StreamFastaReader(strings.NewReader(">a\nMK\n"), func(string, string, map[string]interface{}) error {
		return stop
	}, nil)
	if !errors.Is(err, stop) {
		t.Fatalf("expect handler error, got %v", err)
	}
}

func TestReverse(t *testing.T) {
	if got := string(Reverse([]byte("ABCD"))); got != "DCBA" {
		t.Fatalf("Reverse = %q", got)
	}
}
