package importer

// Canonical property fields. Every recognized spreadsheet column maps onto
// exactly one of these.
const (
	FieldTitle                = "title"
	FieldDescription          = "description"
	FieldPropertyType         = "property_type"
	FieldBusinessType         = "business_type"
	FieldPropertyStatus       = "property_status"
	FieldAvailability         = "availability"
	FieldSalePrice            = "sale_price"
	FieldRentPrice            = "rent_price"
	FieldCurrency             = "currency"
	FieldAdminFee             = "admin_fee"
	FieldCity                 = "city"
	FieldStateDepartment      = "state_department"
	FieldZone                 = "zone"
	FieldAddress              = "address"
	FieldLocality             = "locality"
	FieldBuiltArea            = "built_area"
	FieldPrivateArea          = "private_area"
	FieldLandArea             = "land_area"
	FieldBedrooms             = "bedrooms"
	FieldBathrooms            = "bathrooms"
	FieldParkingSpots         = "parking_spots"
	FieldStratum              = "stratum"
	FieldYearBuilt            = "year_built"
	FieldFeatures             = "features"
	FieldExternalCode         = "external_code"
	FieldOwnerName            = "owner_name"
	FieldOwnerPhone           = "owner_phone"
	FieldOwnerEmail           = "owner_email"
	FieldCommissionPercentage = "commission_percentage"
	FieldCommissionNotes      = "commission_notes"
	FieldPrivateNotes         = "private_notes"
	FieldImages               = "images"
)

// FieldOption is one entry of the manual-override dropdown the caller renders
// for unmapped headers.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MappableFields lists every canonical field with its Spanish UI label,
// in display order.
var MappableFields = []FieldOption{
	{Value: FieldTitle, Label: "Título"},
	{Value: FieldDescription, Label: "Descripción"},
	{Value: FieldPropertyType, Label: "Tipo de inmueble"},
	{Value: FieldBusinessType, Label: "Tipo de negocio"},
	{Value: FieldPropertyStatus, Label: "Estado"},
	{Value: FieldAvailability, Label: "Disponibilidad"},
	{Value: FieldSalePrice, Label: "Precio de venta"},
	{Value: FieldRentPrice, Label: "Precio de arriendo"},
	{Value: FieldCurrency, Label: "Moneda"},
	{Value: FieldAdminFee, Label: "Administración"},
	{Value: FieldCity, Label: "Ciudad"},
	{Value: FieldStateDepartment, Label: "Departamento"},
	{Value: FieldZone, Label: "Zona"},
	{Value: FieldAddress, Label: "Dirección"},
	{Value: FieldLocality, Label: "Barrio / Localidad"},
	{Value: FieldBuiltArea, Label: "Área construida (m²)"},
	{Value: FieldPrivateArea, Label: "Área privada (m²)"},
	{Value: FieldLandArea, Label: "Área del lote (m²)"},
	{Value: FieldBedrooms, Label: "Habitaciones"},
	{Value: FieldBathrooms, Label: "Baños"},
	{Value: FieldParkingSpots, Label: "Parqueaderos"},
	{Value: FieldStratum, Label: "Estrato"},
	{Value: FieldYearBuilt, Label: "Año de construcción"},
	{Value: FieldFeatures, Label: "Características"},
	{Value: FieldExternalCode, Label: "Código externo"},
	{Value: FieldOwnerName, Label: "Nombre del propietario"},
	{Value: FieldOwnerPhone, Label: "Teléfono del propietario"},
	{Value: FieldOwnerEmail, Label: "Correo del propietario"},
	{Value: FieldCommissionPercentage, Label: "Comisión (%)"},
	{Value: FieldCommissionNotes, Label: "Notas de comisión"},
	{Value: FieldPrivateNotes, Label: "Notas privadas"},
	{Value: FieldImages, Label: "Imágenes (URLs)"},
}

// headerDictionary maps lowercase header synonyms — Spanish and English, as
// they show up in real back-office exports — to canonical fields. When several
// raw headers mean the same thing, they all map here.
var headerDictionary = map[string]string{
	// Title
	"titulo":           FieldTitle,
	"título":           FieldTitle,
	"nombre":           FieldTitle,
	"nombre propiedad": FieldTitle,
	"titulo propiedad": FieldTitle,
	"nombre inmueble":  FieldTitle,
	"inmueble":         FieldTitle,
	"title":            FieldTitle,
	"property name":    FieldTitle,

	// Description
	"descripcion":   FieldDescription,
	"descripción":   FieldDescription,
	"detalle":       FieldDescription,
	"detalles":      FieldDescription,
	"observaciones": FieldDescription,
	"description":   FieldDescription,

	// Property type
	"tipo":              FieldPropertyType,
	"tipo de inmueble":  FieldPropertyType,
	"tipo inmueble":     FieldPropertyType,
	"tipo propiedad":    FieldPropertyType,
	"tipo de propiedad": FieldPropertyType,
	"clase de inmueble": FieldPropertyType,
	"property type":     FieldPropertyType,

	// Business type
	"negocio":         FieldBusinessType,
	"tipo de negocio": FieldBusinessType,
	"tipo negocio":    FieldBusinessType,
	"operacion":       FieldBusinessType,
	"operación":       FieldBusinessType,
	"modalidad":       FieldBusinessType,
	"oferta":          FieldBusinessType,
	"business type":   FieldBusinessType,

	// Status
	"estado":              FieldPropertyStatus,
	"estado propiedad":    FieldPropertyStatus,
	"estado del inmueble": FieldPropertyStatus,
	"condicion":           FieldPropertyStatus,
	"condición":           FieldPropertyStatus,
	"status":              FieldPropertyStatus,

	// Availability
	"disponibilidad": FieldAvailability,
	"disponible":     FieldAvailability,
	"availability":   FieldAvailability,

	// Sale price
	"precio":          FieldSalePrice,
	"precio venta":    FieldSalePrice,
	"precio de venta": FieldSalePrice,
	"valor venta":     FieldSalePrice,
	"valor de venta":  FieldSalePrice,
	"vr venta":        FieldSalePrice,
	"valor":           FieldSalePrice,
	"sale price":      FieldSalePrice,
	"price":           FieldSalePrice,

	// Rent price
	"precio arriendo":        FieldRentPrice,
	"precio de arriendo":     FieldRentPrice,
	"valor arriendo":         FieldRentPrice,
	"valor de arriendo":      FieldRentPrice,
	"canon":                  FieldRentPrice,
	"canon arrendamiento":    FieldRentPrice,
	"canon de arrendamiento": FieldRentPrice,
	"arriendo":               FieldRentPrice,
	"renta":                  FieldRentPrice,
	"rent price":             FieldRentPrice,
	"rent":                   FieldRentPrice,

	// Currency
	"moneda":   FieldCurrency,
	"divisa":   FieldCurrency,
	"currency": FieldCurrency,

	// Admin fee
	"administracion":          FieldAdminFee,
	"administración":          FieldAdminFee,
	"valor administracion":    FieldAdminFee,
	"cuota administracion":    FieldAdminFee,
	"cuota de administracion": FieldAdminFee,
	"admin fee":               FieldAdminFee,

	// Location
	"ciudad":    FieldCity,
	"municipio": FieldCity,
	"city":      FieldCity,

	"departamento": FieldStateDepartment,
	"depto":        FieldStateDepartment,
	"state":        FieldStateDepartment,
	"department":   FieldStateDepartment,

	"zona":   FieldZone,
	"sector": FieldZone,
	"zone":   FieldZone,

	"direccion": FieldAddress,
	"dirección": FieldAddress,
	"ubicacion": FieldAddress,
	"ubicación": FieldAddress,
	"address":   FieldAddress,

	"localidad":    FieldLocality,
	"barrio":       FieldLocality,
	"comuna":       FieldLocality,
	"locality":     FieldLocality,
	"neighborhood": FieldLocality,

	// Areas
	"area construida":    FieldBuiltArea,
	"área construida":    FieldBuiltArea,
	"area total":         FieldBuiltArea,
	"área total":         FieldBuiltArea,
	"metros construidos": FieldBuiltArea,
	"area":               FieldBuiltArea,
	"área":               FieldBuiltArea,
	"superficie":         FieldBuiltArea,
	"metraje":            FieldBuiltArea,
	"built area":         FieldBuiltArea,

	"area privada":    FieldPrivateArea,
	"área privada":    FieldPrivateArea,
	"metros privados": FieldPrivateArea,
	"private area":    FieldPrivateArea,

	"area lote":        FieldLandArea,
	"área lote":        FieldLandArea,
	"area terreno":     FieldLandArea,
	"area del terreno": FieldLandArea,
	"terreno":          FieldLandArea,
	"land area":        FieldLandArea,

	// Rooms
	"habitaciones":           FieldBedrooms,
	"numero habitaciones":    FieldBedrooms,
	"numero de habitaciones": FieldBedrooms,
	"alcobas":                FieldBedrooms,
	"cuartos":                FieldBedrooms,
	"dormitorios":            FieldBedrooms,
	"bedrooms":               FieldBedrooms,

	"banos":           FieldBathrooms,
	"baños":           FieldBathrooms,
	"numero banos":    FieldBathrooms,
	"numero de banos": FieldBathrooms,
	"bathrooms":       FieldBathrooms,

	"parqueaderos":        FieldParkingSpots,
	"parqueadero":         FieldParkingSpots,
	"numero parqueaderos": FieldParkingSpots,
	"garajes":             FieldParkingSpots,
	"garaje":              FieldParkingSpots,
	"parking":             FieldParkingSpots,
	"parking spots":       FieldParkingSpots,

	// Stratum / year
	"estrato": FieldStratum,
	"stratum": FieldStratum,

	"ano construccion":    FieldYearBuilt,
	"año construccion":    FieldYearBuilt,
	"ano de construccion": FieldYearBuilt,
	"año de construcción": FieldYearBuilt,
	"year built":          FieldYearBuilt,
	"antiguedad":          FieldYearBuilt,
	"antigüedad":          FieldYearBuilt,

	// Features
	"caracteristicas": FieldFeatures,
	"características": FieldFeatures,
	"amenidades":      FieldFeatures,
	"comodidades":     FieldFeatures,
	"atributos":       FieldFeatures,
	"extras":          FieldFeatures,
	"features":        FieldFeatures,

	// External code
	"codigo":          FieldExternalCode,
	"código":          FieldExternalCode,
	"codigo externo":  FieldExternalCode,
	"codigo inmueble": FieldExternalCode,
	"referencia":      FieldExternalCode,
	"ref":             FieldExternalCode,
	"external code":   FieldExternalCode,
	"code":            FieldExternalCode,

	// Owner
	"propietario":            FieldOwnerName,
	"nombre propietario":     FieldOwnerName,
	"nombre del propietario": FieldOwnerName,
	"dueno":                  FieldOwnerName,
	"dueño":                  FieldOwnerName,
	"owner":                  FieldOwnerName,
	"owner name":             FieldOwnerName,

	"telefono propietario": FieldOwnerPhone,
	"teléfono propietario": FieldOwnerPhone,
	"celular propietario":  FieldOwnerPhone,
	"telefono":             FieldOwnerPhone,
	"teléfono":             FieldOwnerPhone,
	"celular":              FieldOwnerPhone,
	"owner phone":          FieldOwnerPhone,

	"email propietario":      FieldOwnerEmail,
	"correo propietario":     FieldOwnerEmail,
	"correo del propietario": FieldOwnerEmail,
	"email":                  FieldOwnerEmail,
	"correo":                 FieldOwnerEmail,
	"owner email":            FieldOwnerEmail,

	// Commission
	"comision":            FieldCommissionPercentage,
	"comisión":            FieldCommissionPercentage,
	"porcentaje comision": FieldCommissionPercentage,
	"% comision":          FieldCommissionPercentage,
	"commission":          FieldCommissionPercentage,

	"notas comision":         FieldCommissionNotes,
	"observaciones comision": FieldCommissionNotes,

	// Private notes
	"notas":                  FieldPrivateNotes,
	"notas privadas":         FieldPrivateNotes,
	"notas internas":         FieldPrivateNotes,
	"observaciones internas": FieldPrivateNotes,
	"private notes":          FieldPrivateNotes,

	// Images
	"imagenes":    FieldImages,
	"imágenes":    FieldImages,
	"fotos":       FieldImages,
	"fotografias": FieldImages,
	"fotografías": FieldImages,
	"urls fotos":  FieldImages,
	"images":      FieldImages,
	"photos":      FieldImages,
}
