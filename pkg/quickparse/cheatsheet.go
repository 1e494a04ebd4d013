package quickparse

var cheatSheet = []string{
	"h = heute, m = morgen, ü = übermorgen",
	"mo di mi do fr sa so = Wochentag (f = Freitag)",
	"w / wöchentlich, täglich, monatlich = Wiederholung",
	"todo / √ = Aufgabe statt Termin",
	"zoom, meet, teams = Videocall",
	"/privat = Kalender wählen",
	"mit Anna & Ben = Teilnehmer",
	"bei Büro / at Office = Ort",
	"erinnerung 15 = Erinnerung 15 Minuten vorher",
	"p1 p2 p3 = Priorität hoch, mittel, niedrig",
	"#tag = Schlagwort",
	"€10 / 10€ / 10 euro = Einsatz",
	"ganztags / all day = ganztägig",
	"14:30, 18 uhr, 3pm = Uhrzeit",
	"+30 / in 30 min = in 30 Minuten",
	"24.12. / 12/24 = Datum",
}

// CheatSheet returns the shortcut help lines shown next to the input.
func CheatSheet() []string {
	return append([]string(nil), cheatSheet...)
}
