package schema

import "github.com/goecospold/ecospold"

// catalogV1 maps every EcoSpold01 element tag to its descriptor.
// Dates in V1 are split over startYear/startDate style fields; the schema
// stores them as text and the typed layer coerces on read.
var catalogV1 = &Catalog{
	version: ecospold.V1,
	byTag: map[string]*Descriptor{
		"ecoSpold": describe("EcoSpold",
			attr("validationId", KindInt),
			attr("validationStatus", KindString),
		),
		"dataset": describe("Dataset",
			attr("number", KindInt),
			attr("internalSchemaVersion", KindString),
			attr("generator", KindString),
			attr("timestamp", KindTimestamp),
			attr("validCompanyCodes", KindString),
			attr("validRegionalCodes", KindString),
			attr("validCategories", KindString),
			attr("validUnits", KindString),
			attrDefault("languageCode", KindString, "en"),
			attrDefault("localLanguageCode", KindString, "de"),
		),
		"metaInformation":         describe("MetaInformation"),
		"processInformation":      describe("ProcessInformation"),
		"modellingAndValidation":  describe("ModellingAndValidation"),
		"administrativeInformation": describe("AdministrativeInformation"),
		"flowData":                describe("FlowData"),
		"referenceFunction": describe("ReferenceFunction",
			attr("datasetRelatesToProduct", KindBool),
			attr("name", KindString),
			attr("localName", KindString),
			attrDefault("infrastructureProcess", KindBool, "false"),
			attrDefault("amount", KindFloat, "1.0"),
			attr("unit", KindString),
			attr("category", KindString),
			attr("subCategory", KindString),
			attr("localCategory", KindString),
			attr("localSubCategory", KindString),
			attr("includedProcesses", KindString),
			attr("generalComment", KindString),
			attrDefault("infrastructureIncluded", KindBool, "true"),
			attr("CASNumber", KindString),
			attr("statisticalClassification", KindInt),
			attr("formula", KindString),
		),
		"geography": describe("Geography",
			attr("location", KindString),
			attr("text", KindString),
		),
		"technology": describe("Technology",
			attr("text", KindString),
		),
		"timePeriod": describe("TimePeriod",
			attrDefault("dataValidForEntirePeriod", KindBool, "true"),
			attr("text", KindString),
			elem("startDate", KindDate),
			elem("endDate", KindDate),
			elem("startYear", KindString),
			elem("endYear", KindString),
		),
		"dataSetInformation": describe("DataSetInformation",
			attrDefault("type", KindInt, "1"),
			attrDefault("impactAssessmentResult", KindBool, "false"),
			attr("timestamp", KindTimestamp),
			attrDefault("version", KindFloat, "1.0"),
			attrDefault("internalVersion", KindFloat, "1.0"),
			attrDefault("energyValues", KindInt, "0"),
			attrDefault("languageCode", KindString, "en"),
			attrDefault("localLanguageCode", KindString, "de"),
		),
		"exchange": describe("Exchange",
			attr("number", KindInt),
			attr("category", KindString),
			attr("subCategory", KindString),
			attr("localCategory", KindString),
			attr("localSubCategory", KindString),
			attr("CASNumber", KindString),
			attr("name", KindString),
			attr("location", KindString),
			attr("unit", KindString),
			attr("meanValue", KindFloat),
			attrDefault("uncertaintyType", KindInt, "1"),
			attr("standardDeviation95", KindFloat),
			attr("formula", KindString),
			attr("referenceToSource", KindInt),
			attr("pageNumbers", KindString),
			attr("generalComment", KindString),
			attr("localName", KindString),
			attrDefault("infrastructureProcess", KindBool, "false"),
			attr("minValue", KindFloat),
			attr("maxValue", KindFloat),
			attr("mostLikelyValue", KindFloat),
			elem("inputGroup", KindInt),
			elem("outputGroup", KindInt),
		),
		"person": describe("Person",
			attr("number", KindInt),
			attr("name", KindString),
			attr("address", KindString),
			attr("telephone", KindString),
			attr("telefax", KindString),
			attr("email", KindString),
			attr("companyCode", KindString),
			attr("countryCode", KindString),
		),
		"source": describe("Source",
			attr("number", KindInt),
			attrDefault("sourceType", KindInt, "0"),
			attr("firstAuthor", KindString),
			attr("additionalAuthors", KindString),
			attr("year", KindString),
			attr("title", KindString),
			attr("pageNumbers", KindString),
			attr("nameOfEditors", KindString),
			attr("titleOfAnthology", KindString),
			attr("placeOfPublications", KindString),
			attr("publisher", KindString),
			attr("journal", KindString),
			attr("volumeNo", KindInt),
			attr("issueNo", KindString),
			attr("text", KindString),
		),
		"validation": describe("Validation",
			attr("proofReadingDetails", KindString),
			attr("proofReadingValidator", KindInt),
			attr("otherDetails", KindString),
		),
		"dataEntryBy": describe("DataEntryBy",
			attr("person", KindInt),
			attrDefault("qualityNetwork", KindInt, "1"),
		),
		"dataGeneratorAndPublication": describe("DataGeneratorAndPublication",
			attr("person", KindInt),
			attrDefault("dataPublishedIn", KindInt, "0"),
			attr("referenceToPublishedSource", KindInt),
			attrDefault("copyright", KindBool, "true"),
			attrDefault("accessRestrictedTo", KindInt, "0"),
			attr("companyCode", KindString),
			attr("countryCode", KindString),
			attr("pageNumbers", KindString),
		),
		"representativeness": describe("Representativeness",
			attr("percent", KindFloat),
			attr("productionVolume", KindString),
			attr("samplingProcedure", KindString),
			attr("extrapolations", KindString),
			attr("uncertaintyAdjustments", KindString),
		),
		"allocation": describe("Allocation",
			attr("referenceToInputOutput", KindInt),
			attr("referenceToCoProduct", KindInt),
			attrDefault("allocationMethod", KindInt, "-1"),
			attr("fraction", KindFloat),
			attr("explanations", KindString),
		),
	},
}
