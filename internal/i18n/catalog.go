package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

const (
	KeyErrNetwork         = "error.network"
	KeyErrAuth            = "error.auth"
	KeyErrNotFound        = "error.not_found"
	KeyErrServer          = "error.server"
	KeyErrValidation      = "error.validation"
	KeyErrRequired        = "error.required"
	KeyErrNotNumber       = "error.not_number"
	KeyErrNotBool         = "error.not_bool"
	KeyErrTooLong         = "error.too_long"
	KeyErrCredentials     = "error.credentials"
	KeyErrUnauthenticated = "error.unauthenticated"
	KeyErrUnknown         = "error.unknown"

	KeyCancelled     = "action.cancelled"
	KeyDeleted       = "action.deleted"
	KeyCreated       = "action.created"
	KeyUpdated       = "action.updated"
	KeyConfirmDelete = "action.confirm_delete"

	KeyAppTitle    = "app.title"
	KeyLoginTitle  = "login.title"
	KeyUsername    = "login.username"
	KeyPassword    = "login.password"
	KeySigningIn   = "login.signing_in"
	KeyLoading     = "list.loading"
	KeyEmpty       = "list.empty"
	KeyPageOf      = "list.page_of"
	KeySearch      = "list.search"
	KeyCategory    = "list.category"
	KeyNewItem     = "form.title"
	KeyEditItem    = "form.edit_title"
	KeyImagePath   = "form.image"
	KeySaving      = "form.saving"
	KeyMenuHint    = "hint.menu"
	KeyListHint    = "hint.list"
	KeyFormHint    = "hint.form"
	KeyConfirmHint = "hint.confirm"
)

type entry struct {
	en, fr, ar string
}

var messages = map[string]entry{
	KeyErrNetwork:         {"Cannot reach the server. Check your connection.", "Impossible de joindre le serveur. Vérifiez votre connexion.", "تعذر الاتصال بالخادم. تحقق من اتصالك."},
	KeyErrAuth:            {"Access denied or session expired.", "Accès refusé ou session expirée.", "تم رفض الوصول أو انتهت الجلسة."},
	KeyErrNotFound:        {"The item no longer exists.", "L'élément n'existe plus.", "العنصر لم يعد موجودًا."},
	KeyErrServer:          {"The server failed to process the request.", "Le serveur n'a pas pu traiter la demande.", "فشل الخادم في معالجة الطلب."},
	KeyErrValidation:      {"Some fields are invalid.", "Certains champs sont invalides.", "بعض الحقول غير صالحة."},
	KeyErrRequired:        {"%s is required.", "%s est obligatoire.", "%s مطلوب."},
	KeyErrNotNumber:       {"%s must be a number.", "%s doit être un nombre.", "%s يجب أن يكون رقمًا."},
	KeyErrNotBool:         {"%s must be true or false.", "%s doit être true ou false.", "%s يجب أن يكون true أو false."},
	KeyErrTooLong:         {"%s is too long.", "%s est trop long.", "%s طويل جدًا."},
	KeyErrCredentials:     {"Enter your username and password.", "Saisissez votre identifiant et votre mot de passe.", "أدخل اسم المستخدم وكلمة المرور."},
	KeyErrUnauthenticated: {"Please sign in.", "Veuillez vous connecter.", "يرجى تسجيل الدخول."},
	KeyErrUnknown:         {"Something went wrong.", "Une erreur est survenue.", "حدث خطأ ما."},

	KeyCancelled:     {"Cancelled.", "Annulé.", "تم الإلغاء."},
	KeyDeleted:       {"%s deleted.", "%s supprimé.", "تم حذف %s."},
	KeyCreated:       {"%s created.", "%s créé.", "تم إنشاء %s."},
	KeyUpdated:       {"%s updated.", "%s mis à jour.", "تم تحديث %s."},
	KeyConfirmDelete: {"Delete %s?", "Supprimer %s ?", "حذف %s؟"},

	KeyAppTitle:    {"Restaurant admin", "Administration du restaurant", "إدارة المطعم"},
	KeyLoginTitle:  {"Sign in", "Connexion", "تسجيل الدخول"},
	KeyUsername:    {"Username", "Identifiant", "اسم المستخدم"},
	KeyPassword:    {"Password", "Mot de passe", "كلمة المرور"},
	KeySigningIn:   {"Signing in...", "Connexion...", "جارٍ تسجيل الدخول..."},
	KeyLoading:     {"Loading...", "Chargement...", "جارٍ التحميل..."},
	KeyEmpty:       {"Nothing here yet.", "Rien pour le moment.", "لا يوجد شيء بعد."},
	KeyPageOf:      {"Page %d of %d", "Page %d sur %d", "صفحة %d من %d"},
	KeySearch:      {"Search by name", "Rechercher par nom", "البحث بالاسم"},
	KeyCategory:    {"Category id", "Id de catégorie", "رقم الفئة"},
	KeyNewItem:     {"New %s", "Nouveau : %s", "جديد: %s"},
	KeyEditItem:    {"Edit %s", "Modifier : %s", "تعديل: %s"},
	KeyImagePath:   {"Image file", "Fichier image", "ملف الصورة"},
	KeySaving:      {"Saving...", "Enregistrement...", "جارٍ الحفظ..."},
	KeyMenuHint:    {"enter open • l logout • q quit", "entrée ouvrir • l déconnexion • q quitter", "enter فتح • l خروج • q إنهاء"},
	KeyListHint:    {"/ search • c category • ←/→ page • n new • e edit • d delete • esc back", "/ rechercher • c catégorie • ←/→ page • n nouveau • e modifier • d supprimer • esc retour", "/ بحث • c فئة • ←/→ صفحة • n جديد • e تعديل • d حذف • esc رجوع"},
	KeyFormHint:    {"tab next field • enter save • esc cancel", "tab champ suivant • entrée enregistrer • esc annuler", "tab الحقل التالي • enter حفظ • esc إلغاء"},
	KeyConfirmHint: {"y confirm • n cancel", "y confirmer • n annuler", "y تأكيد • n إلغاء"},

	"resource.products":           {"Products", "Produits", "المنتجات"},
	"resource.categories":         {"Categories", "Catégories", "الفئات"},
	"resource.additional-options": {"Additional options", "Options supplémentaires", "الإضافات"},
	"resource.required-options":   {"Required options", "Options obligatoires", "الخيارات الإلزامية"},
	"resource.promotions":         {"Promotions", "Promotions", "العروض"},
	"resource.reels":              {"Reels", "Reels", "المقاطع"},
	"resource.games":              {"Game", "Jeu", "اللعبة"},

	"field.id":              {"ID", "ID", "المعرف"},
	"field.name":            {"Name", "Nom", "الاسم"},
	"field.title":           {"Title", "Titre", "العنوان"},
	"field.description":     {"Description", "Description", "الوصف"},
	"field.price":           {"Price", "Prix", "السعر"},
	"field.category":        {"Category", "Catégorie", "الفئة"},
	"field.categoryId":      {"Category id", "Id de catégorie", "رقم الفئة"},
	"field.available":       {"Available", "Disponible", "متاح"},
	"field.discount":        {"Discount", "Remise", "الخصم"},
	"field.discountPercent": {"Discount %", "Remise %", "نسبة الخصم"},
	"field.video":           {"Video", "Vidéo", "الفيديو"},
	"field.videoUrl":        {"Video URL", "URL de la vidéo", "رابط الفيديو"},
	"field.productId":       {"Product id", "Id du produit", "رقم المنتج"},
	"field.reward":          {"Reward", "Récompense", "المكافأة"},
	"field.points":          {"Points", "Points", "النقاط"},
	"field.image":           {"Image file", "Fichier image", "ملف الصورة"},
	"field.page":            {"Page", "Page", "الصفحة"},
	"field.size":            {"Page size", "Taille de page", "حجم الصفحة"},
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, e := range messages {
		_ = b.SetString(language.English, key, e.en)
		_ = b.SetString(language.French, key, e.fr)
		_ = b.SetString(language.Arabic, key, e.ar)
	}
	return b
}
