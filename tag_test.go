package nbtfix

import "testing"

func TestTagTypeString(t *testing.T) {
	tests := []struct {
		tag  TagType
		want string
	}{
		{TagEnd, "TAG_End"},
		{TagByte, "TAG_Byte"},
		{TagShort, "TAG_Short"},
		{TagInt, "TAG_Int"},
		{TagLong, "TAG_Long"},
		{TagFloat, "TAG_Float"},
		{TagDouble, "TAG_Double"},
		{TagByteArray, "TAG_Byte_Array"},
		{TagString, "TAG_String"},
		{TagList, "TAG_List"},
		{TagCompound, "TAG_Compound"},
		{TagIntArray, "TAG_Int_Array"},
		{TagLongArray, "TAG_Long_Array"},
		{TagType(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("TagType(%d).String() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestTagTypeIsValid(t *testing.T) {
	for id := TagEnd; id <= TagLongArray; id++ {
		if !id.IsValid() {
			t.Errorf("%v should be valid", id)
		}
	}
	if TagType(13).IsValid() {
		t.Error("tag ID 13 should be invalid")
	}
	if TagType(255).IsValid() {
		t.Error("tag ID 255 should be invalid")
	}
}

func TestSampledTags(t *testing.T) {
	tags := SampledTags()

	if len(tags) != 12 {
		t.Fatalf("expected 12 sampled tags, got %d", len(tags))
	}

	for i, tag := range tags {
		if tag == TagEnd {
			t.Error("TAG_End must not be sampled")
		}
		// Declaration order is wire-ID order.
		if i > 0 && tags[i-1] >= tag {
			t.Errorf("tags out of declaration order at index %d: %v >= %v", i, tags[i-1], tag)
		}
	}
}

func TestSampledTagsReturnsCopy(t *testing.T) {
	tags := SampledTags()
	tags[0] = TagEnd

	if SampledTags()[0] != TagByte {
		t.Error("mutating the returned slice must not affect later calls")
	}
}
