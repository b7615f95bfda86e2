package intent

var builtinTemplates = map[string]map[string]string{
	"en": {
		"add":                   "I've added {{.Items}} to your shopping list.",
		"add_empty":             "I couldn't identify any items to add. Please try again.",
		"remove":                "I've removed {{.Items}} from your shopping list.",
		"remove_empty":          "I couldn't identify any items to remove. Please try again.",
		"search":                "Here are the results for {{.Items}}.",
		"search_empty":          "I couldn't identify what to search for. Please try again.",
		"show_list":             "Here's your current shopping list.",
		"clear_list":            "I've cleared your shopping list.",
		"new_list":              "I've created a new shopping list for you.",
		"update_quantity":       "I've updated the quantity to {{.Quantity}}{{with .Unit}} {{.}}{{end}}.",
		"update_quantity_empty": "I couldn't identify the item to update. Please try again.",
		"filter_category":       "Here are the items in the {{.Category}} category.",
		"filter_category_empty": "I couldn't identify the category to filter by. Please try again.",
		"unknown":               "I didn't understand that command. Please try again.",
		"error":                 "Sorry, I encountered an error processing your command.",
	},
	"es": {
		"add":                   "He agregado {{.Items}} a tu lista de compras.",
		"add_empty":             "No pude identificar ningún artículo para agregar. Inténtalo de nuevo.",
		"remove":                "He eliminado {{.Items}} de tu lista de compras.",
		"remove_empty":          "No pude identificar ningún artículo para eliminar. Inténtalo de nuevo.",
		"search":                "Aquí están los resultados para {{.Items}}.",
		"search_empty":          "No pude identificar qué buscar. Inténtalo de nuevo.",
		"show_list":             "Aquí está tu lista de compras actual.",
		"clear_list":            "He vaciado tu lista de compras.",
		"new_list":              "He creado una nueva lista de compras para ti.",
		"update_quantity":       "He actualizado la cantidad a {{.Quantity}}{{with .Unit}} {{.}}{{end}}.",
		"update_quantity_empty": "No pude identificar el artículo que actualizar. Inténtalo de nuevo.",
		"filter_category":       "Aquí están los artículos de la categoría {{.Category}}.",
		"filter_category_empty": "No pude identificar la categoría para filtrar. Inténtalo de nuevo.",
		"unknown":               "No entendí ese comando. Inténtalo de nuevo.",
		"error":                 "Lo siento, ocurrió un error al procesar tu comando.",
	},
	"fr": {
		"add":                   "J'ai ajouté {{.Items}} à votre liste de courses.",
		"add_empty":             "Je n'ai identifié aucun article à ajouter. Veuillez réessayer.",
		"remove":                "J'ai supprimé {{.Items}} de votre liste de courses.",
		"remove_empty":          "Je n'ai identifié aucun article à supprimer. Veuillez réessayer.",
		"search":                "Voici les résultats pour {{.Items}}.",
		"search_empty":          "Je n'ai pas compris quoi rechercher. Veuillez réessayer.",
		"show_list":             "Voici votre liste de courses actuelle.",
		"clear_list":            "J'ai vidé votre liste de courses.",
		"new_list":              "J'ai créé une nouvelle liste de courses pour vous.",
		"update_quantity":       "J'ai mis à jour la quantité à {{.Quantity}}{{with .Unit}} {{.}}{{end}}.",
		"update_quantity_empty": "Je n'ai pas identifié l'article à modifier. Veuillez réessayer.",
		"filter_category":       "Voici les articles de la catégorie {{.Category}}.",
		"filter_category_empty": "Je n'ai pas identifié la catégorie à filtrer. Veuillez réessayer.",
		"unknown":               "Je n'ai pas compris cette commande. Veuillez réessayer.",
		"error":                 "Désolé, une erreur s'est produite lors du traitement de votre commande.",
	},
	"de": {
		"add":                   "Ich habe {{.Items}} zu Ihrer Einkaufsliste hinzugefügt.",
		"add_empty":             "Ich konnte keine Artikel zum Hinzufügen erkennen. Bitte versuchen Sie es erneut.",
		"remove":                "Ich habe {{.Items}} von Ihrer Einkaufsliste entfernt.",
		"remove_empty":          "Ich konnte keine Artikel zum Entfernen erkennen. Bitte versuchen Sie es erneut.",
		"search":                "Hier sind die Ergebnisse für {{.Items}}.",
		"search_empty":          "Ich konnte nicht erkennen, wonach Sie suchen. Bitte versuchen Sie es erneut.",
		"show_list":             "Hier ist Ihre aktuelle Einkaufsliste.",
		"clear_list":            "Ich habe Ihre Einkaufsliste geleert.",
		"new_list":              "Ich habe eine neue Einkaufsliste für Sie erstellt.",
		"update_quantity":       "Ich habe die Menge auf {{.Quantity}}{{with .Unit}} {{.}}{{end}} geändert.",
		"update_quantity_empty": "Ich konnte den zu ändernden Artikel nicht erkennen. Bitte versuchen Sie es erneut.",
		"filter_category":       "Hier sind die Artikel der Kategorie {{.Category}}.",
		"filter_category_empty": "Ich konnte die Kategorie zum Filtern nicht erkennen. Bitte versuchen Sie es erneut.",
		"unknown":               "Ich habe diesen Befehl nicht verstanden. Bitte versuchen Sie es erneut.",
		"error":                 "Entschuldigung, bei der Verarbeitung Ihres Befehls ist ein Fehler aufgetreten.",
	},
}
