package services

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Apto en Chapinero", "apto-en-chapinero"},
		{"Casa — Envigado (El Poblado)", "casa-envigado-el-poblado"},
		{"Ático Nº 5", "atico-n-5"},
		{"  Lote   Rural  ", "lote-rural"},
		{"", ""},
	}

	for _, tt := range tests {
		got := Slugify(tt.raw)
		if got != tt.want {
			t.Errorf("Slugify(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSessionSuffixesCollisions(t *testing.T) {
	session := NewSlugService().Session()

	first := session.GenerateUniqueSlug("Apto en Chapinero")
	second := session.GenerateUniqueSlug("Apto en Chapinero")
	third := session.GenerateUniqueSlug("Apto en Chapinero")

	if first != "apto-en-chapinero" {
		t.Errorf("first = %q", first)
	}
	if second != "apto-en-chapinero-2" {
		t.Errorf("second = %q", second)
	}
	if third != "apto-en-chapinero-3" {
		t.Errorf("third = %q", third)
	}
}

func TestSessionsDoNotLeakIntoEachOther(t *testing.T) {
	svc := NewSlugService()

	// Re-running a preview opens a new session over the same service; the
	// same title must yield the same slug, not a drifting suffix.
	first := svc.Session().GenerateUniqueSlug("Apto A")
	second := svc.Session().GenerateUniqueSlug("Apto A")

	if first != "apto-a" || second != "apto-a" {
		t.Errorf("slugs drifted across sessions: %q vs %q", first, second)
	}
}

func TestSessionRespectsPreload(t *testing.T) {
	svc := NewSlugService()
	svc.Preload([]string{"apto-en-chapinero"})

	if got := svc.Session().GenerateUniqueSlug("Apto en Chapinero"); got != "apto-en-chapinero-2" {
		t.Errorf("got %q; want apto-en-chapinero-2", got)
	}
}

func TestSessionEmptyTitle(t *testing.T) {
	session := NewSlugService().Session()
	if got := session.GenerateUniqueSlug("!!!"); got != "propiedad" {
		t.Errorf("got %q; want propiedad", got)
	}
}
