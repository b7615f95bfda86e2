package lexicon

// Default returns the built-in tables for en, es, fr and de.
func Default() *Set {
	return MustNew(Builtin())
}

// Builtin returns a fresh copy of the built-in tables. Tests start from it
// to build fixture lexicons.
func Builtin() Tables {
	return Tables{
		Languages: []Lexicon{english(), spanish(), french(), german()},
		// Keyword lists mix languages on purpose: a Spanish keyword matches an
		// English request. Row order is the tie-break.
		Categories: []Category{
			{Name: "dairy", Keywords: []string{"dairy", "milk", "cheese", "yogurt", "butter", "cream", "leche", "queso", "lait", "fromage", "milch", "käse"}},
			{Name: "produce", Keywords: []string{"produce", "apple", "banana", "orange", "lettuce", "tomato", "carrot", "manzana", "naranja", "pomme", "banane", "apfel"}},
			{Name: "meat", Keywords: []string{"meat", "chicken", "beef", "pork", "fish", "lamb", "pollo", "res", "cerdo", "poulet", "boeuf", "porc", "huhn", "rind", "schwein"}},
			{Name: "bakery", Keywords: []string{"bakery", "bread", "cake", "cookie", "pastry", "muffin", "pan", "pastel", "galleta", "pain", "gâteau", "brot", "kuchen"}},
			{Name: "pantry", Keywords: []string{"pantry", "rice", "pasta", "flour", "sugar", "oil", "arroz", "harina", "riz", "pâtes", "farine", "reis", "nudeln", "mehl"}},
			{Name: "frozen", Keywords: []string{"frozen", "ice cream", "frozen pizza", "frozen vegetables", "helado", "pizza congelada", "crème glacée", "pizza surgelée", "eis", "gefrorene pizza"}},
			{Name: "beverages", Keywords: []string{"beverages", "water", "juice", "soda", "coffee", "tea", "agua", "jugo", "eau", "jus", "wasser", "saft"}},
			{Name: "snacks", Keywords: []string{"snacks", "chips", "crackers", "nuts", "candy", "papas", "galletas", "nueces", "noix", "bonbons"}},
			{Name: "household", Keywords: []string{"household", "soap", "detergent", "paper towel", "toilet paper", "jabón", "detergente", "toallas", "savon", "détergent", "serviettes", "seife", "waschmittel", "handtücher"}},
			{Name: "personal-care", Keywords: []string{"personal care", "toothpaste", "shampoo", "deodorant", "lotion", "pasta dental", "champú", "desodorante", "dentifrice", "shampooing", "déodorant", "zahnpasta", "deo"}},
			{Name: "electronics", Keywords: []string{"electronics", "laptop", "computer", "phone", "tablet", "tv", "television", "headphones", "earbuds", "charger", "cable", "wire", "battery"}},
		},
		Brands: []string{"nike", "adidas", "coca-cola", "pepsi", "kraft", "nestle", "unilever", "apple", "samsung", "sony", "lg", "hp", "dell", "lenovo"},
		Units: []string{
			"bottle", "bottles", "can", "cans", "pack", "packs", "piece", "pieces", "item", "items",
			"unit", "units", "lb", "lbs", "pound", "pounds", "kg", "kilogram", "kilograms", "g",
			"gram", "grams", "oz", "ounce", "ounces", "liter", "liters", "litre", "litres", "l", "ml",
			"milliliter", "milliliters", "dozen", "pair", "pairs", "set", "sets", "box", "boxes",
			"bag", "bags", "loaf", "loaves", "carton", "cartons", "jar", "jars",
			// es
			"botella", "botellas", "lata", "latas", "paquete", "paquetes", "kilo", "kilos",
			"litro", "litros", "gramo", "gramos", "docena", "docenas", "bolsa", "bolsas",
			"caja", "cajas", "pieza", "piezas",
			// fr
			"bouteille", "bouteilles", "boîte", "boîtes", "paquet", "paquets", "gramme", "grammes",
			"douzaine", "douzaines", "sachet", "sachets",
			// de
			"flasche", "flaschen", "dose", "dosen", "packung", "packungen", "stück", "gramm",
			"dutzend", "beutel",
		},
	}
}

func english() Lexicon {
	return Lexicon{
		Language: "en",
		Fillers: []string{
			"i like", "i want", "i need", "i would like", "i should get",
			"can you add", "could you add", "please add",
			"can you remove", "could you remove", "please remove",
			"can you find", "could you find", "please find",
			"i don't want", "i don't need",
			"get rid of", "throw away", "pick up", "look for", "search for", "take off",
			"add to list", "put on list", "remember to buy",
			"to my shopping list", "from my shopping list", "on my shopping list",
			"to my list", "from my list", "on my list", "to the list", "from the list",
			"my shopping list", "shopping list",
			"that item", "this item", "the item", "these items", "those items",
			"filter by",
		},
		Actions: []string{
			"add", "buy", "get", "need", "want", "like", "put", "include",
			"remember", "forget", "grab", "fetch", "purchase",
			"remove", "delete", "cancel", "drop", "skip", "exclude",
			"find", "search", "locate", "show", "display", "check",
			"please", "thanks", "thank",
		},
		StopWords: []string{
			"i", "me", "my", "we", "us", "our", "you", "your", "them",
			"the", "a", "an", "or", "but", "for", "of", "to", "from", "at", "by", "with", "on", "in",
			"is", "are", "was", "were", "be", "been", "being",
			"have", "has", "had", "having", "do", "does", "did", "doing",
			"will", "would", "should", "could", "might", "may",
			"not", "no", "don't", "doesn't", "didn't",
			"that", "this", "these", "those", "some", "any",
			"there", "here", "where", "when", "how", "why", "what", "which", "who", "whom", "whose",
			"what's", "it's", "that's", "there's", "let's", "i'd", "i'm", "i'll",
			"also", "too", "just", "only", "um", "uh",
		},
		Separators:    []string{",", "and", "&", "plus", "+"},
		Organic:       []string{"organic"},
		PricePrefixes: []string{"less than", "cheaper than", "under", "below"},
		Articles:      []string{"a", "an", "the"},
	}
}

func spanish() Lexicon {
	return Lexicon{
		Language: "es",
		Fillers: []string{
			"me gustaría", "quisiera", "quiero", "necesito", "no quiero", "no necesito",
			"por favor", "puedes agregar", "puedes añadir", "podrías agregar", "puedes quitar",
			"tengo que comprar", "a mi lista de compras", "de mi lista de compras",
			"a mi lista", "de mi lista", "a la lista", "de la lista", "lista de compras",
			"ese artículo", "este artículo",
		},
		Actions: []string{
			"agregar", "agrega", "añadir", "añade", "comprar", "compra", "poner", "pon", "incluir",
			"eliminar", "elimina", "quitar", "quita", "borrar", "borra",
			"buscar", "busca", "encontrar", "encuentra", "mostrar", "muestra", "ver", "gracias",
		},
		StopWords: []string{
			"yo", "me", "mi", "mis", "tu", "tus", "nosotros",
			"el", "la", "los", "las", "un", "una", "unos", "unas",
			"de", "del", "al", "a", "para", "por", "con", "que", "es", "son", "lo", "le",
			"algo", "algún", "alguna", "algunos", "algunas",
			"este", "esta", "estos", "estas", "ese", "esa", "eso", "no",
		},
		Separators: []string{",", "y", "e", "&", "más", "+"},
		Organic: []string{
			"orgánico", "orgánica", "orgánicos", "orgánicas",
			"organico", "organica", "organicos", "organicas", "ecológico", "ecológica",
		},
		PricePrefixes: []string{"menos de", "por debajo de", "menos", "bajo"},
		Articles:      []string{"el", "la", "los", "las", "un", "una", "unos", "unas"},
	}
}

func french() Lexicon {
	return Lexicon{
		Language: "fr",
		Fillers: []string{
			"j'ai besoin de", "j'ai besoin d'", "j'ai besoin", "je voudrais", "je veux", "je souhaite",
			"il me faut", "pouvez-vous ajouter", "peux-tu ajouter", "pouvez-vous supprimer",
			"s'il vous plaît", "s'il te plaît", "à ma liste de courses", "de ma liste de courses",
			"à ma liste", "de ma liste", "liste de courses", "cet article",
		},
		Actions: []string{
			"ajouter", "ajoute", "ajoutez", "acheter", "achète", "prendre",
			"supprimer", "supprime", "retirer", "retire", "enlever", "enlève",
			"chercher", "cherche", "trouver", "trouve", "afficher", "affiche", "montrer", "montre", "merci",
		},
		StopWords: []string{
			"je", "j", "moi", "me", "m", "mon", "ma", "mes", "ton", "ta", "tes", "tu", "vous", "nous", "il",
			"le", "la", "les", "l", "un", "une", "des", "du", "de", "d", "au", "aux", "à",
			"pour", "avec", "ce", "cet", "cette", "ces", "quelque", "est", "sont", "ne", "pas", "svp",
		},
		Separators:    []string{",", "et", "&", "plus", "+"},
		Organic:       []string{"bio", "biologique", "biologiques"},
		PricePrefixes: []string{"moins cher que", "en dessous de", "moins de", "en dessous", "moins", "sous"},
		Articles:      []string{"le", "la", "les", "l", "un", "une", "des", "du", "de", "d"},
	}
}

func german() Lexicon {
	return Lexicon{
		Language: "de",
		Fillers: []string{
			"ich brauche", "ich möchte", "ich hätte gern", "ich hätte gerne", "ich will",
			"kannst du", "könntest du", "bitte", "zu meiner einkaufsliste", "von meiner einkaufsliste",
			"zu meiner liste", "von meiner liste", "zur liste", "meine einkaufsliste", "einkaufsliste",
		},
		Actions: []string{
			"hinzufügen", "hinzu", "füge", "kaufen", "kaufe", "besorgen", "holen",
			"entfernen", "entferne", "löschen", "lösche", "streichen",
			"suchen", "suche", "finden", "finde", "zeigen", "zeige", "anzeigen", "danke",
		},
		StopWords: []string{
			"ich", "mir", "mich", "mein", "meine", "meiner", "meinen", "du", "wir", "uns",
			"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem", "einer",
			"zu", "zur", "zum", "auf", "von", "vom", "mit", "für", "noch", "auch", "etwas",
			"ist", "sind", "oder", "nicht",
		},
		Separators:    []string{",", "und", "&", "plus", "+"},
		Organic:       []string{"bio", "biologisch", "öko"},
		PricePrefixes: []string{"weniger als", "unter"},
		Articles:      []string{"der", "die", "das", "den", "dem", "ein", "eine", "einen"},
	}
}
