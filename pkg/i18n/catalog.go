package i18n

var catalogs = map[string]map[string]string{
	English: {
		// errores
		"INVALID_BODY":        "Invalid request body",
		"VALIDATION":          "Some fields are invalid",
		"NOT_FOUND":           "Record not found",
		"DUPLICATE":           "A record with the same name already exists",
		"CONFLICT":            "The record is in use or in a conflicting state",
		"UNAUTHORIZED":        "You must sign in",
		"FORBIDDEN":           "You do not have permission to do this",
		"INTERNAL":            "Something went wrong, please try again",
		"MISSING_TOKEN":       "You must sign in",
		"INVALID_TOKEN":       "Your session is invalid, please sign in again",
		"SESSION_EXPIRED":     "Your session has expired, please sign in again",
		"MISSING_ROLE":        "Your session has no role",
		"INVALID_CREDENTIALS": "Wrong username or password",
		"ACCOUNT_INACTIVE":    "This account is deactivated",
		"WEAK_PASSWORD":       "Password must contain an uppercase letter, a lowercase letter and a number",
		"WRONG_PASSWORD":      "Current password is wrong",
		"INVALID_USERNAME":    "Username may only contain lowercase letters, numbers, dots, dashes and underscores",
		"SELF_UPDATE":         "You cannot change your own role or status",
		"FILE_TOO_LARGE":      "The file is too large",
		"MISSING_FILE":        "A file is required",
		"INVALID_RELATION":    "Exactly one related record is required",
		// validación por etiqueta
		"required":            "This field is required",
		"min":                 "Value is too short",
		"max":                 "Value is too long",
		"email":               "Invalid email address",
		"url":                 "Invalid URL",
		"uuid":                "Invalid identifier",
		"oneof":               "Invalid option",
		"gt":                  "Value must be greater than zero",
		"gte":                 "Value cannot be negative",
		"username":            "Username may only contain lowercase letters, numbers, dots, dashes and underscores",
		"password_complexity": "Password must contain an uppercase letter, a lowercase letter and a number",
		"currency":            "Unsupported currency",
		"money":               "Price must be zero or more with at most two decimals",
		"lte":                 "Value is too large",
		"bcrypt_len":          "Password is too long",
		"datetime":            "Invalid date, expected YYYY-MM-DD",
		// PDF de oferta comercial
		"offer_title":      "Commercial Offer",
		"offer_project":    "Project",
		"offer_client":     "Client",
		"offer_date":       "Date",
		"offer_item":       "Item",
		"offer_quantity":   "Qty",
		"offer_unit_price": "Unit price",
		"offer_total":      "Total",
		"offer_totals":     "Totals",
		"offer_reg_number": "Registration no.",
	},
	Spanish: {
		"INVALID_BODY":        "Cuerpo de la petición inválido",
		"VALIDATION":          "Hay campos inválidos",
		"NOT_FOUND":           "Registro no encontrado",
		"DUPLICATE":           "Ya existe un registro con el mismo nombre",
		"CONFLICT":            "El registro está en uso o en un estado incompatible",
		"UNAUTHORIZED":        "Debe iniciar sesión",
		"FORBIDDEN":           "No tiene permiso para realizar esta acción",
		"INTERNAL":            "Algo salió mal, intente de nuevo",
		"MISSING_TOKEN":       "Debe iniciar sesión",
		"INVALID_TOKEN":       "Su sesión no es válida, inicie sesión de nuevo",
		"SESSION_EXPIRED":     "Su sesión expiró, inicie sesión de nuevo",
		"MISSING_ROLE":        "Su sesión no tiene rol",
		"INVALID_CREDENTIALS": "Usuario o contraseña incorrectos",
		"ACCOUNT_INACTIVE":    "Esta cuenta está desactivada",
		"WEAK_PASSWORD":       "La contraseña debe tener una mayúscula, una minúscula y un número",
		"WRONG_PASSWORD":      "La contraseña actual es incorrecta",
		"INVALID_USERNAME":    "El usuario solo admite minúsculas, números, puntos, guiones y guiones bajos",
		"SELF_UPDATE":         "No puede cambiar su propio rol o estado",
		"FILE_TOO_LARGE":      "El archivo es demasiado grande",
		"MISSING_FILE":        "Se requiere un archivo",
		"INVALID_RELATION":    "Se requiere exactamente un registro relacionado",
		"required":            "Este campo es obligatorio",
		"min":                 "El valor es demasiado corto",
		"max":                 "El valor es demasiado largo",
		"email":               "Correo electrónico inválido",
		"url":                 "URL inválida",
		"uuid":                "Identificador inválido",
		"oneof":               "Opción inválida",
		"gt":                  "El valor debe ser mayor que cero",
		"gte":                 "El valor no puede ser negativo",
		"username":            "El usuario solo admite minúsculas, números, puntos, guiones y guiones bajos",
		"password_complexity": "La contraseña debe tener una mayúscula, una minúscula y un número",
		"currency":            "Moneda no soportada",
		"money":               "El precio debe ser cero o más, con dos decimales como máximo",
		"lte":                 "El valor es demasiado grande",
		"bcrypt_len":          "La contraseña es demasiado larga",
		"datetime":            "Fecha inválida, formato AAAA-MM-DD",
		"offer_title":         "Oferta Comercial",
		"offer_project":       "Proyecto",
		"offer_client":        "Cliente",
		"offer_date":          "Fecha",
		"offer_item":          "Ítem",
		"offer_quantity":      "Cant.",
		"offer_unit_price":    "Precio unitario",
		"offer_total":         "Total",
		"offer_totals":        "Totales",
		"offer_reg_number":    "N° de registro",
	},
	Arabic: {
		"INVALID_BODY":        "محتوى الطلب غير صالح",
		"VALIDATION":          "بعض الحقول غير صالحة",
		"NOT_FOUND":           "السجل غير موجود",
		"DUPLICATE":           "يوجد سجل بنفس الاسم",
		"CONFLICT":            "السجل مستخدم أو في حالة متعارضة",
		"UNAUTHORIZED":        "يجب تسجيل الدخول",
		"FORBIDDEN":           "ليس لديك صلاحية لهذا الإجراء",
		"INTERNAL":            "حدث خطأ ما، حاول مرة أخرى",
		"MISSING_TOKEN":       "يجب تسجيل الدخول",
		"INVALID_TOKEN":       "الجلسة غير صالحة، سجّل الدخول مرة أخرى",
		"SESSION_EXPIRED":     "انتهت الجلسة، سجّل الدخول مرة أخرى",
		"MISSING_ROLE":        "الجلسة بلا دور",
		"INVALID_CREDENTIALS": "اسم المستخدم أو كلمة المرور غير صحيحة",
		"ACCOUNT_INACTIVE":    "هذا الحساب معطّل",
		"WEAK_PASSWORD":       "يجب أن تحتوي كلمة المرور على حرف كبير وحرف صغير ورقم",
		"WRONG_PASSWORD":      "كلمة المرور الحالية غير صحيحة",
		"INVALID_USERNAME":    "اسم المستخدم يقبل الحروف الصغيرة والأرقام والنقاط والشرطات فقط",
		"SELF_UPDATE":         "لا يمكنك تغيير دورك أو حالتك",
		"FILE_TOO_LARGE":      "الملف كبير جداً",
		"MISSING_FILE":        "الملف مطلوب",
		"INVALID_RELATION":    "يجب تحديد سجل مرتبط واحد فقط",
		"required":            "هذا الحقل مطلوب",
		"min":                 "القيمة قصيرة جداً",
		"max":                 "القيمة طويلة جداً",
		"email":               "بريد إلكتروني غير صالح",
		"url":                 "رابط غير صالح",
		"uuid":                "معرّف غير صالح",
		"oneof":               "خيار غير صالح",
		"gt":                  "يجب أن تكون القيمة أكبر من صفر",
		"gte":                 "لا يمكن أن تكون القيمة سالبة",
		"username":            "اسم المستخدم يقبل الحروف الصغيرة والأرقام والنقاط والشرطات فقط",
		"password_complexity": "يجب أن تحتوي كلمة المرور على حرف كبير وحرف صغير ورقم",
		"currency":            "عملة غير مدعومة",
		"money":               "يجب أن يكون السعر صفراً أو أكثر وبخانتين عشريتين كحد أقصى",
		"lte":                 "القيمة كبيرة جداً",
		"bcrypt_len":          "كلمة المرور طويلة جداً",
		"datetime":            "تاريخ غير صالح، الصيغة YYYY-MM-DD",
		"offer_title":         "عرض تجاري",
		"offer_project":       "المشروع",
		"offer_client":        "العميل",
		"offer_date":          "التاريخ",
		"offer_item":          "الصنف",
		"offer_quantity":      "الكمية",
		"offer_unit_price":    "سعر الوحدة",
		"offer_total":         "الإجمالي",
		"offer_totals":        "الإجماليات",
		"offer_reg_number":    "رقم التسجيل",
	},
}
