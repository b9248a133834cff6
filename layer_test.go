package cloudinary

import "testing"

func TestTextLayer_String(t *testing.T) {
	testCases := []struct {
		layer TextLayer
		str   string
	}{
		{TextLayer{Text: "Hello", Font: "Arial_40"}, "l_text:Arial_40:Hello"},
		{TextLayer{Text: "Hello World", Font: "Arial_40"}, "l_text:Arial_40:Hello%20World"},
		{TextLayer{Text: "Sale", Font: "Roboto_12_bold", Color: "rgb:00ff00"}, "l_text:Roboto_12_bold:Sale:rgb:00ff00"},
		{TextLayer{Text: "Hello, World!", Font: "F"}, "l_text:F:Hello,%20World!"},
		{TextLayer{Text: "#1 100%", Font: "F"}, "l_text:F:%231%20100%25"},
		{TextLayer{Text: "a/b?c@d:e", Font: "F"}, "l_text:F:a/b?c@d:e"},
		{TextLayer{Text: "crème", Font: "F"}, "l_text:F:cr%C3%A8me"},
		{TextLayer{Text: "", Font: "F"}, "l_text:F:"},
	}

	for _, tc := range testCases {
		str := tc.layer.String()
		if str != tc.str {
			t.Errorf("Result string must be equal [%s]. Got: [%s]", tc.str, str)
		}
	}
}

func TestLayer_Extensible(t *testing.T) {
	var l Layer = stubLayer("l_logo")
	o := ImageOptions{Format: ImageFormatAuto, Width: Float(10), Layers: []Layer{l}}
	if str := o.String(); str != "w_10/l_logo" {
		t.Errorf("Result string must be equal [w_10/l_logo]. Got: [%s]", str)
	}
}

type stubLayer string

func (s stubLayer) String() string { return string(s) }
