package gamedata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDocumentNumericWidths(t *testing.T) {
	doc := Document{
		"i":   int(7),
		"i8":  int8(-3),
		"u16": uint16(300),
		"i64": int64(1 << 40),
		"f32": float32(2.5),
		"f64": 9.75,
		"num": json.Number("12.5"),
	}

	for key, want := range map[string]float64{
		"i": 7, "i8": -3, "u16": 300, "i64": 1 << 40, "f32": 2.5, "f64": 9.75, "num": 12.5,
	} {
		got, ok := doc.Float(key)
		if !ok || got != want {
			t.Errorf("Float(%q) = %v, %v; want %v", key, got, ok, want)
		}
	}

	if got, ok := doc.Int("f64"); !ok || got != 9 {
		t.Errorf("Int truncation = %v, %v; want 9", got, ok)
	}
}

func TestDocumentMissingAndMismatched(t *testing.T) {
	doc := Document{"name": "meteor", "count": 3}

	if _, ok := doc.Int("missing"); ok {
		t.Error("Int on missing key reported ok")
	}
	if _, ok := doc.Int("name"); ok {
		t.Error("Int on string reported ok")
	}
	if _, ok := doc.String("count"); ok {
		t.Error("String on number reported ok")
	}
	if _, ok := doc.Bool("count"); ok {
		t.Error("Bool on number reported ok")
	}
	if _, ok := doc.Object("name"); ok {
		t.Error("Object on string reported ok")
	}
	if _, ok := doc.Array("name"); ok {
		t.Error("Array on string reported ok")
	}
	if !doc.HasKey("name") || doc.HasKey("missing") {
		t.Error("HasKey mismatch")
	}
}

func TestDocumentNestedShapes(t *testing.T) {
	doc := Document{
		"obj":   map[string]any{"a": 1},
		"typed": []Document{{"x": 1}},
		"loose": []any{map[string]any{"x": 2}, "skip", Document{"x": 3}},
	}

	obj, ok := doc.Object("obj")
	if !ok || !obj.HasKey("a") {
		t.Fatalf("Object = %v, %v", obj, ok)
	}
	typed, ok := doc.Array("typed")
	if !ok || len(typed) != 1 {
		t.Fatalf("typed Array = %v, %v", typed, ok)
	}
	loose, ok := doc.Array("loose")
	if !ok || len(loose) != 2 {
		t.Fatalf("loose Array = %v, %v; want 2 objects", loose, ok)
	}
	if x, _ := loose[1].Int("x"); x != 3 {
		t.Errorf("loose[1].x = %d, want 3", x)
	}
}

func sampleDocument() Document {
	return Document{
		"Score": 1200,
		"MeteorStorm": Document{
			"CurrentMeteors": 1,
			"SpawnTimer":     0.75,
			"Meteors": []Document{
				{"TextureNum": 1, "PositionX": 10.5, "PositionY": -20.25, "Rotation": 45.0, "SpinSpeed": 17.0},
			},
		},
		"EnemyManager": Document{
			"EnemyUFO":   Document{},
			"EnemyShips": []Document{{"UFOSpawned": true}},
		},
	}
}

func TestCodecsRoundTrip(t *testing.T) {
	for _, codec := range []Codec{JSONCodec{}, MsgpackCodec{}} {
		data, err := codec.Marshal(sampleDocument())
		if err != nil {
			t.Fatalf("%T Marshal: %v", codec, err)
		}
		doc, err := codec.Unmarshal(data)
		if err != nil {
			t.Fatalf("%T Unmarshal: %v", codec, err)
		}

		if score, _ := doc.Int("Score"); score != 1200 {
			t.Errorf("%T Score = %d", codec, score)
		}
		storm, ok := doc.Object("MeteorStorm")
		if !ok {
			t.Fatalf("%T MeteorStorm missing", codec)
		}
		meteors, ok := storm.Array("Meteors")
		if !ok || len(meteors) != 1 {
			t.Fatalf("%T Meteors = %v", codec, meteors)
		}
		if y, _ := meteors[0].Float("PositionY"); y != -20.25 {
			t.Errorf("%T PositionY = %v", codec, y)
		}
		manager, _ := doc.Object("EnemyManager")
		ufo, ok := manager.Object("EnemyUFO")
		if !ok || ufo.HasKey("MovingLeft") {
			t.Errorf("%T EnemyUFO = %v, %v", codec, ufo, ok)
		}
		ships, _ := manager.Array("EnemyShips")
		if len(ships) != 1 {
			t.Fatalf("%T ships = %v", codec, ships)
		}
		if flag, ok := ships[0].Bool("UFOSpawned"); !ok || !flag {
			t.Errorf("%T UFOSpawned = %v, %v", codec, flag, ok)
		}
	}
}

func TestJSONUnmarshalRejectsNonObject(t *testing.T) {
	if _, err := (JSONCodec{}).Unmarshal([]byte("null")); err == nil {
		t.Error("expected error for null document")
	}
	if _, err := (JSONCodec{}).Unmarshal([]byte("[1,2]")); err == nil {
		t.Error("expected error for array document")
	}
}

func TestCodecFor(t *testing.T) {
	if _, err := CodecFor("save.JSON"); err != nil {
		t.Errorf("json: %v", err)
	}
	if c, err := CodecFor("save.msgpack"); err != nil {
		t.Errorf("msgpack: %v", err)
	} else if _, ok := c.(MsgpackCodec); !ok {
		t.Errorf("msgpack codec = %T", c)
	}
	if _, err := CodecFor("save.yaml"); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"nested/save.json", "save.mp"} {
		path := filepath.Join(dir, name)
		if err := SaveFile(path, sampleDocument()); err != nil {
			t.Fatalf("SaveFile(%s): %v", name, err)
		}
		doc, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", name, err)
		}
		if !doc.HasKey("EnemyManager") {
			t.Errorf("%s: EnemyManager missing", name)
		}
	}

	if _, err := LoadFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected decode error")
	}
}
