package schema

import "github.com/goecospold/ecospold"

// Descriptors shared by several V2 tags. The comment family (comment,
// generalComment, allocationComment) and the two activity-dataset tags
// intentionally resolve to one descriptor each.
var (
	descComment         = describe("Comment")
	descActivityDataset = describe("ActivityDataset")
)

// catalogV2 maps every EcoSpold02 element tag to its descriptor.
var catalogV2 = &Catalog{
	version: ecospold.V2,
	byTag: map[string]*Descriptor{
		"ecoSpold":             describe("EcoSpold"),
		"activityDataset":      descActivityDataset,
		"childActivityDataset": descActivityDataset,
		"activityDescription":  describe("ActivityDescription"),
		"activity": describe("Activity",
			attr("id", KindString),
			attr("activityNameId", KindString),
			attr("activityNameContextId", KindString),
			attr("parentActivityId", KindString),
			attr("parentActivityContextId", KindString),
			attrDefault("inheritanceDepth", KindInt, "0"),
			attrDefault("type", KindInt, "1"),
			attrDefault("specialActivityType", KindInt, "0"),
			attrDefault("energyValues", KindInt, "0"),
			attr("masterAllocationPropertyId", KindString),
			attr("masterAllocationPropertyIdOverwrittenByChild", KindBool),
			attr("masterAllocationPropertyContextId", KindString),
			attr("datasetIcon", KindString),
		),
		"classification": describe("Classification",
			attr("classificationId", KindString),
			attr("classificationContextId", KindString),
		),
		"geography": describe("Geography",
			attr("geographyId", KindString),
			attr("geographyContextId", KindString),
		),
		"technology": describe("Technology",
			attrDefault("technologyLevel", KindInt, "3"),
		),
		"timePeriod": describe("TimePeriod",
			attr("startDate", KindDate),
			attr("endDate", KindDate),
			attrDefault("isDataValidForEntirePeriod", KindBool, "true"),
		),
		"macroEconomicScenario": describe("MacroEconomicScenario",
			attr("macroEconomicScenarioId", KindString),
			attr("macroEconomicScenarioContextId", KindString),
		),
		"flowData": describe("FlowData"),
		"intermediateExchange": describe("IntermediateExchange",
			attr("id", KindString),
			attr("unitId", KindString),
			attr("unitContextId", KindString),
			attr("variableName", KindString),
			attr("casNumber", KindString),
			attr("amount", KindFloat),
			attrDefault("isCalculatedAmount", KindBool, "false"),
			attr("mathematicalRelation", KindString),
			attr("intermediateExchangeId", KindString),
			attr("intermediateExchangeContextId", KindString),
			attr("activityLinkId", KindString),
			attr("activityLinkContextId", KindString),
			attr("activityLinkIdOverwrittenByChild", KindBool),
			attr("productionVolumeAmount", KindFloat),
			attr("productionVolumeVariableName", KindString),
			attr("productionVolumeMathematicalRelation", KindString),
			attr("sourceId", KindString),
			attr("sourceContextId", KindString),
			attr("sourceIdOverwrittenByChild", KindBool),
			attr("sourceYear", KindString),
			attr("sourceFirstAuthor", KindString),
			elem("inputGroup", KindInt),
			elem("outputGroup", KindInt),
		),
		"elementaryExchange": describe("ElementaryExchange",
			attr("id", KindString),
			attr("unitId", KindString),
			attr("unitContextId", KindString),
			attr("variableName", KindString),
			attr("casNumber", KindString),
			attr("amount", KindFloat),
			attrDefault("isCalculatedAmount", KindBool, "false"),
			attr("mathematicalRelation", KindString),
			attr("elementaryExchangeId", KindString),
			attr("elementaryExchangeContextId", KindString),
			attr("formula", KindString),
			attr("sourceId", KindString),
			attr("sourceContextId", KindString),
			attr("sourceYear", KindString),
			attr("sourceFirstAuthor", KindString),
			elem("inputGroup", KindInt),
			elem("outputGroup", KindInt),
		),
		"parameter": describe("Parameter",
			attr("parameterId", KindString),
			attr("parameterContextId", KindString),
			attr("variableName", KindString),
			attr("mathematicalRelation", KindString),
			attrDefault("isCalculatedAmount", KindBool, "false"),
			attr("amount", KindFloat),
			attr("unitId", KindString),
			attr("unitContextId", KindString),
		),
		"property": describe("Property",
			attr("propertyId", KindString),
			attr("propertyContextId", KindString),
			attr("variableName", KindString),
			attr("mathematicalRelation", KindString),
			attrDefault("isDefiningValue", KindBool, "false"),
			attrDefault("isCalculatedAmount", KindBool, "false"),
			attr("amount", KindFloat),
			attr("unitId", KindString),
			attr("unitContextId", KindString),
		),
		"transferCoefficient": describe("TransferCoefficient",
			attr("exchangeId", KindString),
			attr("amount", KindFloat),
			attr("mathematicalRelation", KindString),
			attrDefault("isCalculatedAmount", KindBool, "false"),
			attr("sourceId", KindString),
			attr("sourceContextId", KindString),
			attr("sourceYear", KindString),
			attr("sourceFirstAuthor", KindString),
		),
		"uncertainty":            describe("Uncertainty"),
		"modellingAndValidation": describe("ModellingAndValidation"),
		"representativeness": describe("Representativeness",
			attr("percent", KindFloat),
			attr("systemModelId", KindString),
			attr("systemModelContextId", KindString),
		),
		"review": describe("Review",
			attr("reviewerId", KindString),
			attr("reviewerContextId", KindString),
			attr("reviewerName", KindString),
			attr("reviewerEmail", KindString),
			attr("reviewDate", KindDate),
			attr("reviewedMajorRelease", KindInt),
			attr("reviewedMinorRelease", KindInt),
			attr("reviewedMajorRevision", KindInt),
			attr("reviewedMinorRevision", KindInt),
		),
		"administrativeInformation": describe("AdministrativeInformation"),
		"dataEntryBy": describe("DataEntryBy",
			attr("personId", KindString),
			attr("personContextId", KindString),
			attrDefault("isActiveAuthor", KindBool, "false"),
			attr("personName", KindString),
			attr("personEmail", KindString),
		),
		"dataGeneratorAndPublication": describe("DataGeneratorAndPublication",
			attr("personId", KindString),
			attr("personContextId", KindString),
			attr("personName", KindString),
			attr("personEmail", KindString),
			attrDefault("dataPublishedIn", KindInt, "0"),
			attr("publishedSourceId", KindString),
			attr("publishedSourceContextId", KindString),
			attr("publishedSourceIdOverwrittenByChild", KindBool),
			attr("publishedSourceYear", KindString),
			attr("publishedSourceFirstAuthor", KindString),
			attrDefault("isCopyrightProtected", KindBool, "true"),
			attr("pageNumbers", KindString),
			attrDefault("accessRestrictedTo", KindInt, "0"),
			attr("companyId", KindString),
			attr("companyContextId", KindString),
			attr("companyCode", KindString),
		),
		"fileAttributes": describe("FileAttributes",
			attrDefault("majorRelease", KindInt, "1"),
			attrDefault("minorRelease", KindInt, "0"),
			attrDefault("majorRevision", KindInt, "0"),
			attrDefault("minorRevision", KindInt, "0"),
			attr("internalSchemaVersion", KindString),
			attrDefault("defaultLanguage", KindString, "en"),
			attr("creationTimestamp", KindTimestamp),
			attr("lastEditTimestamp", KindTimestamp),
			attr("fileGenerator", KindString),
			attr("fileTimestamp", KindTimestamp),
			attr("contextId", KindString),
			elem("contextName", KindString),
		),
		"impactIndicator": describe("ImpactIndicator",
			attr("impactIndicatorId", KindString),
			attr("impactIndicatorContextId", KindString),
			attr("impactMethodId", KindString),
			attr("impactMethodContextId", KindString),
			attr("impactCategoryId", KindString),
			attr("impactCategoryContextId", KindString),
			attr("amount", KindFloat),
		),
		"comment":           descComment,
		"generalComment":    descComment,
		"allocationComment": descComment,
	},
}
