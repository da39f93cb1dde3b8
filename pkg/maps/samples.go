package maps

// Встроенные карты. Используются, когда каталог карт не задан.

// Town - одна эксклюзивная категория: выживает ровно одна из трех секций
var Town = New(1, "Town").
	WithSize(20, 15).
	Place("Villager", 2, 2, "<evc_excl_section:towns 1>").
	Place("Guard", 3, 2, "<evc_excl_section:towns 1><evc_disable_mode:switch A>").
	HideWhen("A").
	Place("Merchant", 10, 4, "<evc_excl_section:towns 2>").
	Place("Traveler", 15, 9, "<evc_excl_section:towns C>").
	Place("Signpost", 0, 0, "").
	MustBuild()

// Outskirts - обычная секция с шансом, одиночный объект и одна непарная эксклюзивная секция
var Outskirts = New(2, "Outskirts").
	WithSize(30, 20).
	Place("Camp fire", 5, 5, "<evc_section:towns1><evc_chance:90>").
	Place("Camper", 6, 5, "<evc_section:towns1>").
	Place("Treasure", 20, 12, "<evc_chance:75><evc_disable_mode:switch B ON>").
	HideWhen("B").
	Place("Hermit", 25, 3, "<evc_excl_section:hermit>").
	MustBuild()

// Ruins - пустая карта без тегов
var Ruins = New(3, "Ruins").
	WithSize(10, 10).
	Place("Statue", 4, 4, "").
	MustBuild()

// Samples возвращает библиотеку встроенных карт
func Samples() *Library {
	return NewLibrary(Town, Outskirts, Ruins)
}
