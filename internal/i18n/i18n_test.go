package i18n

import "testing"

func TestLookupFallsBackToEnglish(t *testing.T) {
	en := Lookup("en", "cart.title")
	if en == "" || en == "cart.title" {
		t.Fatalf("clé anglaise manquante: %q", en)
	}

	// langue inconnue : repli anglais
	if got := Lookup("fr", "cart.title"); got != en {
		t.Errorf("repli anglais attendu, reçu %q", got)
	}

	// clé inconnue : la clé elle-même, jamais une chaîne vide
	if got := Lookup("en", "does.not.exist"); got != "does.not.exist" {
		t.Errorf("repli sur la clé attendu, reçu %q", got)
	}
}

func TestSupportedLanguagesHaveTables(t *testing.T) {
	for _, lang := range Languages() {
		if !Supported(lang) {
			t.Errorf("langue %s annoncée mais sans table", lang)
		}
		if len(Table(lang)) == 0 {
			t.Errorf("table %s vide", lang)
		}
	}
	if Supported("fr") {
		t.Error("fr ne devrait pas être supporté")
	}
}

// Les tables hi/kn doivent couvrir les clés de navigation principales ;
// le repli anglais couvre le reste.
func TestCoreKeysTranslated(t *testing.T) {
	core := []string{"navbar.home", "navbar.cart", "navbar.wishlist", "navbar.login"}
	for _, lang := range []string{"hi", "kn"} {
		table := Table(lang)
		for _, key := range core {
			if _, ok := table[key]; !ok {
				t.Errorf("clé %s absente de la table %s", key, lang)
			}
		}
	}
}
