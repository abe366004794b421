package sentence

import (
	"encoding/json"
	"testing"
)

func TestLabelJSON(t *testing.T) {
	data, err := json.Marshal([]Label{Keep, Delete})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != `["KEEP","DELETE"]` {
		t.Errorf("unexpected JSON %s", data)
	}

	var labels []Label
	if err := json.Unmarshal(data, &labels); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 2 || labels[0] != Keep || labels[1] != Delete {
		t.Errorf("unexpected labels %v", labels)
	}

	if _, err := json.Marshal(Label(7)); err == nil {
		t.Errorf("expected error for invalid label")
	}

	var l Label
	if err := json.Unmarshal([]byte(`"KEPT"`), &l); err == nil {
		t.Errorf("expected error for unknown label")
	}
}

func TestExampleKept(t *testing.T) {
	ex := Example{Tokens: []LabeledToken{
		{Form: "a", Label: Delete},
		{Form: "b", Label: Keep},
		{Form: "c", Label: Keep},
	}}

	kept := ex.Kept()
	if len(kept) != 2 || kept[0].Form != "b" || kept[1].Form != "c" {
		t.Errorf("unexpected kept tokens %+v", kept)
	}

	if (Dataset{ex, ex}).NumTokens() != 6 {
		t.Errorf("expected 6 tokens")
	}
}
