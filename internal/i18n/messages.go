package i18n

var catalogs = map[string]map[string]string{
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyValidation:         "Dados inválidos",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyConflict:           "Conflito",
		ErrKeyTimeout:            "Tempo limite excedido",
		ErrKeyServiceUnavailable: "Não foi possível falar com o servidor, tente novamente",
		ErrKeyOperationInFlight:  "Aguarde, a operação anterior ainda está em andamento",

		ErrKeyProductNotFound:    "Produto não encontrado",
		ErrKeyProductOutOfStock:  "{item} está esgotado",
		ErrKeySessionNotFound:    "Sessão de personalização não encontrada",
		ErrKeySessionAbandoned:   "Você removeu o sabor base. Voltando ao cardápio...",
		ErrKeyFlavorModeDisabled: "Este produto não aceita múltiplos sabores",
		ErrKeyFlavorLimitReached: "Máximo de {max} sabores atingido",
		ErrKeyFlavorOutOfStock:   "{item} está esgotado",
		ErrKeyFlavorNotCandidate: "Sabor indisponível para este produto",
		ErrKeyFlavorNotSelected:  "Sabor não selecionado",
		ErrKeyBaseFlavorRequired: "É necessário manter pelo menos 1 sabor base",
		ErrKeyAddonUnavailable:   "{item} está esgotado",
		ErrKeyNotesTooLong:       "Observações devem ter no máximo {max} caracteres",
		ErrKeyUnknownNotePreset:  "Observação rápida desconhecida",

		ErrKeyCartNotFound:     "Carrinho não encontrado",
		ErrKeyCartItemNotFound: "Item não encontrado no carrinho",
		ErrKeyCartEmpty:        "Carrinho vazio",
		ErrKeyCartConflict:     "O carrinho foi alterado em outra aba, recarregue e tente novamente",
		ErrKeyStockExceeded:    "Estoque insuficiente. Quantidade máxima disponível: {max}",
		ErrKeyCheckoutRejected: "Alguns itens não estão mais disponíveis",
		ErrKeyItemUnavailable:  "{item}: estoque insuficiente",

		ErrKeyCategoryNameRequired:    "Digite o nome da categoria",
		ErrKeyCategoryExists:          "Já existe uma categoria com este nome",
		ErrKeyCategoryNotFound:        "Categoria não encontrada",
		ErrKeySizeNameRequired:        "Digite o nome do peso/tamanho",
		ErrKeySizeExists:              "Já existe um peso/tamanho com este nome",
		ErrKeySizeNotFound:            "Peso/tamanho não encontrado",
		ErrKeyFlavorLimitInvalid:      "O número de sabores deve estar entre {min} e {max}",
		ErrKeyAddonCategoriesRequired: "Selecione pelo menos uma categoria para o adicional",
		ErrKeyProductNameRequired:     "Digite o nome do produto",
		ErrKeyProductPriceInvalid:     "Preço inválido",
		ErrKeyProductStockInvalid:     "Estoque não pode ser negativo",

		SuccessKeyItemAdded:    "{item} adicionado ao carrinho!",
		SuccessKeyOrderCreated: "Pedido {order} realizado com sucesso!",
	},
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyValidation:         "Validation failed",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "Conflict",
		ErrKeyTimeout:            "Request timed out",
		ErrKeyServiceUnavailable: "Could not reach the backend, please try again",
		ErrKeyOperationInFlight:  "The previous operation is still in progress",

		ErrKeyProductNotFound:    "Product not found",
		ErrKeyProductOutOfStock:  "{item} is out of stock",
		ErrKeySessionNotFound:    "Customization session not found",
		ErrKeySessionAbandoned:   "The base flavor was removed. Returning to the menu...",
		ErrKeyFlavorModeDisabled: "This product does not accept multiple flavors",
		ErrKeyFlavorLimitReached: "Maximum of {max} flavors reached",
		ErrKeyFlavorOutOfStock:   "{item} is out of stock",
		ErrKeyFlavorNotCandidate: "Flavor not available for this product",
		ErrKeyFlavorNotSelected:  "Flavor is not selected",
		ErrKeyBaseFlavorRequired: "At least one base flavor must be kept",
		ErrKeyAddonUnavailable:   "{item} is out of stock",
		ErrKeyNotesTooLong:       "Notes must be at most {max} characters",
		ErrKeyUnknownNotePreset:  "Unknown quick note",

		ErrKeyCartNotFound:     "Cart not found",
		ErrKeyCartItemNotFound: "Item not found in cart",
		ErrKeyCartEmpty:        "Cart is empty",
		ErrKeyCartConflict:     "The cart changed in another tab, reload and try again",
		ErrKeyStockExceeded:    "Insufficient stock. Maximum available quantity: {max}",
		ErrKeyCheckoutRejected: "Some items are no longer available",
		ErrKeyItemUnavailable:  "{item}: insufficient stock",

		ErrKeyCategoryNameRequired:    "Category name is required",
		ErrKeyCategoryExists:          "A category with this name already exists",
		ErrKeyCategoryNotFound:        "Category not found",
		ErrKeySizeNameRequired:        "Size name is required",
		ErrKeySizeExists:              "A size with this name already exists",
		ErrKeySizeNotFound:            "Size not found",
		ErrKeyFlavorLimitInvalid:      "Flavor limit must be between {min} and {max}",
		ErrKeyAddonCategoriesRequired: "Select at least one category for the add-on",
		ErrKeyProductNameRequired:     "Product name is required",
		ErrKeyProductPriceInvalid:     "Invalid price",
		ErrKeyProductStockInvalid:     "Stock cannot be negative",

		SuccessKeyItemAdded:    "{item} added to cart!",
		SuccessKeyOrderCreated: "Order {order} placed successfully!",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
		ErrKeyValidation:         "Validatie mislukt",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyConflict:           "Conflict",
		ErrKeyTimeout:            "Time-out van het verzoek",
		ErrKeyServiceUnavailable: "Backend niet bereikbaar, probeer het opnieuw",
		ErrKeyOperationInFlight:  "De vorige bewerking is nog bezig",

		ErrKeyProductNotFound:    "Product niet gevonden",
		ErrKeyProductOutOfStock:  "{item} is uitverkocht",
		ErrKeySessionNotFound:    "Samenstelsessie niet gevonden",
		ErrKeySessionAbandoned:   "De basissmaak is verwijderd. Terug naar het menu...",
		ErrKeyFlavorModeDisabled: "Dit product ondersteunt geen meerdere smaken",
		ErrKeyFlavorLimitReached: "Maximaal {max} smaken bereikt",
		ErrKeyFlavorOutOfStock:   "{item} is uitverkocht",
		ErrKeyFlavorNotCandidate: "Smaak niet beschikbaar voor dit product",
		ErrKeyFlavorNotSelected:  "Smaak is niet geselecteerd",
		ErrKeyBaseFlavorRequired: "Er moet minstens één basissmaak blijven",
		ErrKeyAddonUnavailable:   "{item} is uitverkocht",
		ErrKeyNotesTooLong:       "Opmerkingen mogen maximaal {max} tekens bevatten",
		ErrKeyUnknownNotePreset:  "Onbekende snelle opmerking",

		ErrKeyCartNotFound:     "Winkelwagen niet gevonden",
		ErrKeyCartItemNotFound: "Artikel niet gevonden in winkelwagen",
		ErrKeyCartEmpty:        "Winkelwagen is leeg",
		ErrKeyCartConflict:     "De winkelwagen is in een ander tabblad gewijzigd, herlaad en probeer opnieuw",
		ErrKeyStockExceeded:    "Onvoldoende voorraad. Maximaal beschikbaar: {max}",
		ErrKeyCheckoutRejected: "Sommige artikelen zijn niet meer beschikbaar",
		ErrKeyItemUnavailable:  "{item}: onvoldoende voorraad",

		ErrKeyCategoryNameRequired:    "Categorienaam is vereist",
		ErrKeyCategoryExists:          "Er bestaat al een categorie met deze naam",
		ErrKeyCategoryNotFound:        "Categorie niet gevonden",
		ErrKeySizeNameRequired:        "Maatnaam is vereist",
		ErrKeySizeExists:              "Er bestaat al een maat met deze naam",
		ErrKeySizeNotFound:            "Maat niet gevonden",
		ErrKeyFlavorLimitInvalid:      "Smaaklimiet moet tussen {min} en {max} liggen",
		ErrKeyAddonCategoriesRequired: "Kies minstens één categorie voor de extra",
		ErrKeyProductNameRequired:     "Productnaam is verplicht",
		ErrKeyProductPriceInvalid:     "Ongeldige prijs",
		ErrKeyProductStockInvalid:     "Voorraad kan niet negatief zijn",

		SuccessKeyItemAdded:    "{item} toegevoegd aan winkelwagen!",
		SuccessKeyOrderCreated: "Bestelling {order} succesvol geplaatst!",
	},
}
