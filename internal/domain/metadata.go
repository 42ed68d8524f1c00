package domain

import "slices"

// DefaultAssetKinds are the Type values of exported objects that carry media tables
var DefaultAssetKinds = []string{"AkAudioEvent"}

// DialogueAssetKind is the Type of exported external-media dialogue objects
const DialogueAssetKind = "PSExternalMediaAsset"

// MediaRef is one (MediaPathName, DebugName) pair found in a metadata document
type MediaRef struct {
	ID        string
	DebugName string
	Language  string
}

// ExtractMedia collects every media pair from an exported metadata document.
//
// The document is an array of objects. Objects whose Type is one of kinds are
// descended through EventCookedData.EventLanguageMap[*].Value.Media[*]. Media
// entries lacking either name are ignored. An empty kinds list accepts every object.
func ExtractMedia(doc Node, kinds []string) []MediaRef {
	var refs []MediaRef
	for _, obj := range doc.Items() {
		if len(kinds) > 0 && !slices.Contains(kinds, obj.Key("Type").TextOr("")) {
			continue
		}
		for _, lang := range obj.Path("EventCookedData", "EventLanguageMap").Items() {
			language := lang.Key("Key").TextOr("")
			for _, media := range lang.Path("Value", "Media").Items() {
				id, ok := media.Key("MediaPathName").Text()
				if !ok {
					continue
				}
				debug, ok := media.Key("DebugName").Text()
				if !ok {
					continue
				}
				refs = append(refs, MediaRef{
					ID:        NormalizeSlashes(id),
					DebugName: NormalizeSlashes(debug),
					Language:  language,
				})
			}
		}
	}
	return refs
}

// DialogueObjectPath returns Properties.ObjectPath of the first dialogue asset in doc
func DialogueObjectPath(doc Node) (string, bool) {
	for _, obj := range doc.Items() {
		if obj.Key("Type").TextOr("") != DialogueAssetKind {
			continue
		}
		if p, ok := obj.Path("Properties", "ObjectPath").Text(); ok {
			return p, true
		}
	}
	return "", false
}
