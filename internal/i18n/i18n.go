// Package i18n sert les tables de chaînes statiques de l'interface.
// Pas d'infrastructure de localisation : changer de langue revient à
// échanger une table contre une autre, avec repli sur l'anglais.
package i18n

const DefaultLang = "en"

// Lookup résout une clé pointée ("cart.empty") dans la langue demandée,
// avec repli sur l'anglais puis sur la clé elle-même.
func Lookup(lang, key string) string {
	if table, ok := tables[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := tables[DefaultLang][key]; ok {
		return msg
	}
	return key
}

// Table renvoie la table complète d'une langue (repli anglais), pour que
// le navigateur la charge en une requête.
func Table(lang string) map[string]string {
	if table, ok := tables[lang]; ok {
		return table
	}
	return tables[DefaultLang]
}

// Supported indique si la langue a une table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Languages liste les codes de langue disponibles.
func Languages() []string {
	return []string{"en", "hi", "kn"}
}
