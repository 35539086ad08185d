package i18n

var tables = map[string]map[string]string{
	"en": {
		"navbar.home":              "Home",
		"navbar.shopByCategory":    "Shop by Category",
		"navbar.trending":          "Trending",
		"navbar.wishlist":          "Wishlist",
		"navbar.cart":              "Cart",
		"navbar.orders":            "My Orders",
		"navbar.profile":           "My Profile",
		"navbar.login":             "Login",
		"navbar.logout":            "Logout",
		"navbar.register":          "Register",
		"navbar.searchPlaceholder": "Search for products",
		"navbar.allCategories":     "All Categories",
		"navbar.language":          "Language",

		"auth.loginTitle":    "Login to your account",
		"auth.registerTitle": "Create a new account",
		"auth.email":         "Email",
		"auth.password":      "Password",
		"auth.loginButton":   "Login",
		"auth.registerButton": "Register",
		"auth.loginRequired": "Please login to continue",

		"profile.title":   "My Profile",
		"profile.address": "Address",
		"profile.phone":   "Phone Number",

		"orders.title":       "My Orders",
		"orders.orderId":     "Order ID",
		"orders.status":      "Status",
		"orders.totalAmount": "Total Amount",
		"orders.placedOn":    "Placed On",
		"orders.noOrders":    "You have no orders yet",

		"wishlist.title":      "My Wishlist",
		"wishlist.empty":      "Your wishlist is empty",
		"wishlist.moveToCart": "Move to Cart",
		"wishlist.remove":     "Remove",

		"cart.title":    "My Cart",
		"cart.empty":    "Your cart is empty",
		"cart.checkout": "Proceed to Checkout",
		"cart.total":    "Total",
		"cart.quantity": "Quantity",

		"common.loading":    "Loading...",
		"common.error":      "Something went wrong",
		"common.retry":      "Retry",
		"common.cancel":     "Cancel",
		"common.addToCart":  "Add to Cart",
		"common.outOfStock": "Out of Stock",
		"common.inStock":    "In Stock",
		"common.featured":   "Featured",
		"common.trending":   "Trending",
	},
	"hi": {
		"navbar.home":              "होम",
		"navbar.shopByCategory":    "श्रेणी के अनुसार खरीदें",
		"navbar.trending":          "ट्रेंडिंग",
		"navbar.wishlist":          "इच्छा-सूची",
		"navbar.cart":              "कार्ट",
		"navbar.orders":            "मेरे ऑर्डर",
		"navbar.profile":           "मेरी प्रोफ़ाइल",
		"navbar.login":             "लॉगिन",
		"navbar.logout":            "लॉगआउट",
		"navbar.register":          "रजिस्टर",
		"navbar.searchPlaceholder": "उत्पाद खोजें",
		"navbar.allCategories":     "सभी श्रेणियाँ",
		"navbar.language":          "भाषा",

		"auth.loginTitle":    "अपने खाते में लॉगिन करें",
		"auth.registerTitle": "नया खाता बनाएँ",
		"auth.email":         "ईमेल",
		"auth.password":      "पासवर्ड",
		"auth.loginButton":   "लॉगिन",
		"auth.registerButton": "रजिस्टर",
		"auth.loginRequired": "जारी रखने के लिए लॉगिन करें",

		"profile.title":   "मेरी प्रोफ़ाइल",
		"profile.address": "पता",
		"profile.phone":   "फ़ोन नंबर",

		"orders.title":       "मेरे ऑर्डर",
		"orders.orderId":     "ऑर्डर आईडी",
		"orders.status":      "स्थिति",
		"orders.totalAmount": "कुल राशि",
		"orders.placedOn":    "ऑर्डर की तिथि",
		"orders.noOrders":    "आपके पास कोई ऑर्डर नहीं है",

		"wishlist.title":      "मेरी इच्छा-सूची",
		"wishlist.empty":      "आपकी इच्छा-सूची खाली है",
		"wishlist.moveToCart": "कार्ट में डालें",
		"wishlist.remove":     "हटाएँ",

		"cart.title":    "मेरा कार्ट",
		"cart.empty":    "आपका कार्ट खाली है",
		"cart.checkout": "चेकआउट करें",
		"cart.total":    "कुल",
		"cart.quantity": "मात्रा",

		"common.loading":    "लोड हो रहा है...",
		"common.error":      "कुछ गलत हो गया",
		"common.retry":      "पुनः प्रयास करें",
		"common.cancel":     "रद्द करें",
		"common.addToCart":  "कार्ट में डालें",
		"common.outOfStock": "स्टॉक में नहीं",
		"common.inStock":    "स्टॉक में उपलब्ध",
		"common.featured":   "विशेष",
		"common.trending":   "ट्रेंडिंग",
	},
	"kn": {
		"navbar.home":              "ಹೋಮ್",
		"navbar.shopByCategory":    "ವರ್ಗದ ಪ್ರಕಾರ ಖರೀದಿಸಿ",
		"navbar.trending":          "ಟ್ರೆಂಡಿಂಗ್",
		"navbar.wishlist":          "ಇಚ್ಛಾಪಟ್ಟಿ",
		"navbar.cart":              "ಕಾರ್ಟ್",
		"navbar.orders":            "ನನ್ನ ಆರ್ಡರ್‌ಗಳು",
		"navbar.profile":           "ನನ್ನ ಪ್ರೊಫೈಲ್",
		"navbar.login":             "ಲಾಗಿನ್",
		"navbar.logout":            "ಲಾಗ್ಔಟ್",
		"navbar.register":          "ನೋಂದಣಿ",
		"navbar.searchPlaceholder": "ಉತ್ಪನ್ನಗಳನ್ನು ಹುಡುಕಿ",
		"navbar.allCategories":     "ಎಲ್ಲಾ ವರ್ಗಗಳು",
		"navbar.language":          "ಭಾಷೆ",

		"auth.loginTitle":    "ನಿಮ್ಮ ಖಾತೆಗೆ ಲಾಗಿನ್ ಮಾಡಿ",
		"auth.registerTitle": "ಹೊಸ ಖಾತೆ ರಚಿಸಿ",
		"auth.email":         "ಇಮೇಲ್",
		"auth.password":      "ಪಾಸ್ವರ್ಡ್",
		"auth.loginButton":   "ಲಾಗಿನ್",
		"auth.registerButton": "ನೋಂದಣಿ",
		"auth.loginRequired": "ಮುಂದುವರಿಸಲು ಲಾಗಿನ್ ಮಾಡಿ",

		"profile.title":   "ನನ್ನ ಪ್ರೊಫೈಲ್",
		"profile.address": "ವಿಳಾಸ",
		"profile.phone":   "ದೂರವಾಣಿ ಸಂಖ್ಯೆ",

		"orders.title":       "ನನ್ನ ಆರ್ಡರ್‌ಗಳು",
		"orders.orderId":     "ಆರ್ಡರ್ ಐಡಿ",
		"orders.status":      "ಸ್ಥಿತಿ",
		"orders.totalAmount": "ಒಟ್ಟು ಮೊತ್ತ",
		"orders.placedOn":    "ಆರ್ಡರ್ ಮಾಡಿದ ದಿನ",
		"orders.noOrders":    "ನೀವು ಯಾವುದೇ ಆರ್ಡರ್ ಮಾಡಿಲ್ಲ",

		"wishlist.title":      "ನನ್ನ ಇಚ್ಛಾಪಟ್ಟಿ",
		"wishlist.empty":      "ನಿಮ್ಮ ಇಚ್ಛಾಪಟ್ಟಿ ಖಾಲಿಯಾಗಿದೆ",
		"wishlist.moveToCart": "ಕಾರ್ಟ್‌ಗೆ ಸೇರಿಸಿ",
		"wishlist.remove":     "ತೆಗೆದುಹಾಕಿ",

		"cart.title":    "ನನ್ನ ಕಾರ್ಟ್",
		"cart.empty":    "ನಿಮ್ಮ ಕಾರ್ಟ್ ಖಾಲಿಯಾಗಿದೆ",
		"cart.checkout": "ಚೆಕ್‌ಔಟ್",
		"cart.total":    "ಒಟ್ಟು",
		"cart.quantity": "ಪ್ರಮಾಣ",

		"common.loading":    "ಲೋಡ್ ಆಗುತ್ತಿದೆ...",
		"common.error":      "ಏನೋ ತಪ್ಪಾಗಿದೆ",
		"common.retry":      "ಮರುಪ್ರಯತ್ನಿಸಿ",
		"common.cancel":     "ರದ್ದುಮಾಡಿ",
		"common.addToCart":  "ಕಾರ್ಟ್‌ಗೆ ಸೇರಿಸಿ",
		"common.outOfStock": "ಸ್ಟಾಕ್ ಮುಗಿದಿದೆ",
		"common.inStock":    "ಸ್ಟಾಕ್‌ನಲ್ಲಿ ಲಭ್ಯವಿದೆ",
		"common.featured":   "ವಿಶೇಷ",
		"common.trending":   "ಟ್ರೆಂಡಿಂಗ್",
	},
}
