package domain

import "testing"

const eventDoc = `[
  {"Type": "AkMediaAsset", "EventCookedData": {"EventLanguageMap": [
    {"Value": {"Media": [{"MediaPathName": "Media/0.wem", "DebugName": "Ignored.wav"}]}}
  ]}},
  {
    "Type": "AkAudioEvent",
    "Name": "Play_Line",
    "EventCookedData": {
      "EventLanguageMap": [
        {"Key": {"LanguageName": "SFX"}, "Value": {"Media": [
          {"MediaPathName": "Media\\1.wem", "DebugName": "Events\\Act_01\\Line_01.wav"},
          {"MediaPathName": "Media/2.wem"},
          {"DebugName": "Orphan.wav"},
          "not an object"
        ]}},
        {"Key": "English", "Value": null},
        {"Key": "French"},
        {"Key": "German", "Value": {"Media": {"not": "an array"}}}
      ]
    }
  },
  {"Type": "AkAudioEvent"},
  42
]`

func TestExtractMedia(t *testing.T) {
	doc, err := ParseNode([]byte(eventDoc))
	if err != nil {
		t.Fatalf("ParseNode failed: %v", err)
	}

	refs := ExtractMedia(doc, DefaultAssetKinds)

	if len(refs) != 1 {
		t.Fatalf("expected 1 media ref, got %d: %+v", len(refs), refs)
	}
	if refs[0].ID != "Media/1.wem" {
		t.Errorf("expected normalized ID, got %s", refs[0].ID)
	}
	if refs[0].DebugName != "Events/Act_01/Line_01.wav" {
		t.Errorf("expected normalized debug name, got %s", refs[0].DebugName)
	}
}

func TestExtractMedia_AnyKind(t *testing.T) {
	doc, err := ParseNode([]byte(eventDoc))
	if err != nil {
		t.Fatalf("ParseNode failed: %v", err)
	}

	if refs := ExtractMedia(doc, nil); len(refs) != 2 {
		t.Errorf("expected 2 refs without a kind filter, got %d", len(refs))
	}
}

func TestExtractMedia_NonArrayDocument(t *testing.T) {
	doc, err := ParseNode([]byte(`{"Type": "AkAudioEvent"}`))
	if err != nil {
		t.Fatalf("ParseNode failed: %v", err)
	}
	if refs := ExtractMedia(doc, DefaultAssetKinds); len(refs) != 0 {
		t.Errorf("expected no refs, got %+v", refs)
	}
}

func TestParseNode_StripsBOM(t *testing.T) {
	data := append([]byte{0xef, 0xbb, 0xbf}, []byte(`[{"Type": "x"}]`)...)
	doc, err := ParseNode(data)
	if err != nil {
		t.Fatalf("ParseNode failed: %v", err)
	}
	if got := doc.Items()[0].Key("Type").TextOr(""); got != "x" {
		t.Errorf("expected x, got %q", got)
	}
}

func TestNode_MissingLevels(t *testing.T) {
	var n Node
	if n.Key("a").Path("b", "c").Present() {
		t.Error("absent node chain must stay absent")
	}
	if n.Items() != nil {
		t.Error("absent node has no items")
	}
	if _, ok := NewNode(3.0).Text(); ok {
		t.Error("number is not text")
	}
}

func TestDialogueObjectPath(t *testing.T) {
	doc, err := ParseNode([]byte(`[
		{"Type": "Other"},
		{"Type": "PSExternalMediaAsset", "Properties": {"ObjectPath": "/Game/Dialogue/Act_01/Line.0"}}
	]`))
	if err != nil {
		t.Fatalf("ParseNode failed: %v", err)
	}

	p, ok := DialogueObjectPath(doc)
	if !ok || p != "/Game/Dialogue/Act_01/Line.0" {
		t.Errorf("got %q, %v", p, ok)
	}
}
