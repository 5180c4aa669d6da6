// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rules

// 🔄 Rule maps a legacy identifier pattern to its modern replacement.
// Pattern is a regular expression matched against the full quoted attribute
// value. GUID patterns match case-insensitively; everything else is
// case-sensitive.
type Rule struct {
	Pattern     string // regex over the legacy attribute value
	Replacement string // simplified modern identifier
	IgnoreCase  bool   // GUID patterns only
}

// 📋 Category identifies which attribute family a rule table targets.
type Category string

const (
	CategoryExecutableType Category = "executable-type"
	CategoryStringClassID  Category = "string-classid"
	CategoryGUIDClassID    Category = "guid-classid"
)

// Attribute names the tables are applied against. Executable-type rules run
// against both task attributes; class ID rules only against the component
// attribute.
const (
	AttrCreationName     = "DTS:CreationName"
	AttrExecutableType   = "DTS:ExecutableType"
	AttrComponentClassID = "componentClassID"
)

// 📦 ExecutableType maps legacy ExecutableType/CreationName values to
// simplified task names. Order matters: the first matching rule wins and its
// replacement no longer matches any later pattern.
var ExecutableType = []Rule{
	// Pipeline task by GUID (mixed-case in older designers)
	{Pattern: `\{5918251B-2970-45A4-AB5F-01C3C588FE5A\}`, Replacement: "Microsoft.Pipeline", IgnoreCase: true},

	// SSIS.Pipeline, SSIS.Pipeline.2, SSIS.Pipeline.3, ...
	{Pattern: `SSIS\.Pipeline(\.\d+)?`, Replacement: "Microsoft.Pipeline"},
	{Pattern: `SSIS\.ExecutePackageTask(\.\d+)?`, Replacement: "Microsoft.ExecutePackageTask"},
	{Pattern: `SSIS\.Package(\.\d+)?`, Replacement: "Microsoft.Package"},

	// Assembly-qualified task names keep arbitrary prefix/suffix text
	{Pattern: `[^"]*Microsoft\.SqlServer\.ExecProcTask[^"]*`, Replacement: "Microsoft.ExecuteProcess"},
	{Pattern: `[^"]*Microsoft\.SqlServer\.SQLTask[^"]*`, Replacement: "Microsoft.ExecuteSQLTask"},
	{Pattern: `[^"]*Microsoft\.SqlServer\.ExpressionTask[^"]*`, Replacement: "Microsoft.ExpressionTask"},
	{Pattern: `[^"]*Microsoft\.SqlServer\.FileSystemTask[^"]*`, Replacement: "Microsoft.FileSystemTask"},
	{Pattern: `[^"]*Microsoft\.SqlServer\.ScriptTask[^"]*`, Replacement: "Microsoft.ScriptTask"},
	{Pattern: `[^"]*Microsoft\.SqlServer\.TransferDatabasesTask[^"]*`, Replacement: "Microsoft.TransferDatabaseTask"},

	// Maintenance plan tasks
	{Pattern: `[^"]*DbMaintenanceReindexTask[^"]*`, Replacement: "Microsoft.DbMaintenanceReindexTask"},
	{Pattern: `[^"]*DbMaintenanceShrinkTask[^"]*`, Replacement: "Microsoft.DbMaintenanceShrinkTask"},
	{Pattern: `[^"]*DbMaintenanceTSQLExecuteTask[^"]*`, Replacement: "Microsoft.DbMaintenanceTSQLExecuteTask"},
	{Pattern: `[^"]*DbMaintenanceUpdateStatisticsTask[^"]*`, Replacement: "Microsoft.DbMaintenanceUpdateStatisticsTask"},
}

// 📦 StringClassID maps legacy ProgID-form component class IDs to modern
// names.
var StringClassID = []Rule{
	{Pattern: `DTS\.ManagedComponentWrapper\.3`, Replacement: "Microsoft.ManagedComponentWrapper"},

	// Destination adapters
	{Pattern: `DTSAdapter\.ExcelDestination\.3`, Replacement: "Microsoft.ExcelDestination"},
	{Pattern: `DTSAdapter\.OLEDBDestination\.3`, Replacement: "Microsoft.OLEDBDestination"},

	// Source adapters
	{Pattern: `DTSAdapter\.ExcelSource\.3`, Replacement: "Microsoft.ExcelSource"},
	{Pattern: `DTSAdapter\.FlatFileSource\.3`, Replacement: "Microsoft.FlatFileSource"},
	{Pattern: `DTSAdapter\.OLEDBSource\.3`, Replacement: "Microsoft.OLEDBSource"},

	// Transforms
	{Pattern: `DTSTransform\.Aggregate\.3`, Replacement: "Microsoft.Aggregate"},
	{Pattern: `DTSTransform\.ConditionalSplit\.3`, Replacement: "Microsoft.ConditionalSplit"},
	{Pattern: `DTSTransform\.DataConvert\.3`, Replacement: "Microsoft.DataConvert"},
	{Pattern: `DTSTransform\.DerivedColumn\.3`, Replacement: "Microsoft.DerivedColumn"},
	{Pattern: `DTSTransform\.Lookup\.3`, Replacement: "Microsoft.Lookup"},
	{Pattern: `DTSTransform\.Merge\.3`, Replacement: "Microsoft.Merge"},
	{Pattern: `DTSTransform\.MergeJoin\.3`, Replacement: "Microsoft.MergeJoin"},
	{Pattern: `DTSTransform\.Multicast\.3`, Replacement: "Microsoft.Multicast"},
	{Pattern: `DTSTransform\.OLEDBCommand\.3`, Replacement: "Microsoft.OLEDBCommand"},
	{Pattern: `DTSTransform\.SCD\.3`, Replacement: "Microsoft.SlowlyChangingDimension"},
	{Pattern: `DTSTransform\.Sort\.3`, Replacement: "Microsoft.Sort"},
	{Pattern: `DTSTransform\.UnionAll\.3`, Replacement: "Microsoft.UnionAll"},
}

// 📦 GUIDClassID maps CLSID-form component class IDs to modern names. All
// GUID rules match case-insensitively.
//
// Note: {5918251B-...} also appears in ExecutableType as Microsoft.Pipeline.
// The same CLSID means different things depending on which attribute carries
// it, so the duplication is intentional.
var GUIDClassID = []Rule{
	// Transforms
	{Pattern: `\{5B201335-B360-485C-BB93-75C34E09B3D3\}`, Replacement: "Microsoft.Aggregate", IgnoreCase: true},
	{Pattern: `\{7F88F654-4E20-4D14-84F4-AF9C925D3087\}`, Replacement: "Microsoft.ConditionalSplit", IgnoreCase: true},
	{Pattern: `\{62B1106C-7DB8-4EC8-ADD6-4C664DFFC54A\}`, Replacement: "Microsoft.DataConvert", IgnoreCase: true},
	{Pattern: `\{49928E82-9C4E-49F0-AABE-3812B82707EC\}`, Replacement: "Microsoft.DerivedColumn", IgnoreCase: true},
	{Pattern: `\{671046B0-AA63-4C9F-90E4-C06E0B710CE3\}`, Replacement: "Microsoft.Lookup", IgnoreCase: true},
	{Pattern: `\{36E0E750-2510-4776-AA6E-17EAE84FD63E\}`, Replacement: "Microsoft.Merge", IgnoreCase: true},
	{Pattern: `\{14D43A4F-D7BD-489D-829E-6DE35750CFE4\}`, Replacement: "Microsoft.MergeJoin", IgnoreCase: true},
	{Pattern: `\{EC139FBC-694E-490B-8EA7-35690FB0F445\}`, Replacement: "Microsoft.Multicast", IgnoreCase: true},
	{Pattern: `\{93FFEC66-CBC8-4C7F-9C6A-CB1C17A7567D\}`, Replacement: "Microsoft.OLEDBCommand", IgnoreCase: true},
	{Pattern: `\{25BBB0C5-369B-4303-B3DF-D0DC741DEE58\}`, Replacement: "Microsoft.SlowlyChangingDimension", IgnoreCase: true},
	{Pattern: `\{5B1A3FF5-D366-4D75-AD1F-F19A36FCBEDB\}`, Replacement: "Microsoft.Sort", IgnoreCase: true},
	{Pattern: `\{B594E9A8-4351-4939-891C-CFE1AB93E925\}`, Replacement: "Microsoft.UnionAll", IgnoreCase: true},
	{Pattern: `\{874F7595-FB5F-40FF-96AF-FBFF8250E3EF\}`, Replacement: "Microsoft.ManagedComponentWrapper", IgnoreCase: true},

	// Destinations
	{Pattern: `\{4ADA7EAA-136C-4215-8098-D7A7C27FC0D1\}`, Replacement: "Microsoft.OLEDBDestination", IgnoreCase: true},
	{Pattern: `\{8DA75FED-1B7C-407D-B2AD-2B24209CCCA4\}`, Replacement: "Microsoft.FlatFileDestination", IgnoreCase: true},
	{Pattern: `\{C457FD7E-CE98-4C4B-AEFE-F3AE0044F181\}`, Replacement: "Microsoft.RecordsetDestination", IgnoreCase: true},

	// Sources, including the alternative CLSIDs some designers emitted
	{Pattern: `\{165A526D-D5DE-47FF-96A6-F8274C19826B\}`, Replacement: "Microsoft.OLEDBSource", IgnoreCase: true},
	{Pattern: `\{8C084929-27D1-479F-9641-ABB7CDADF1AC\}`, Replacement: "Microsoft.ExcelSource", IgnoreCase: true},
	{Pattern: `\{D23FD76B-F51D-420F-BBCB-19CBF6AC1AB4\}`, Replacement: "Microsoft.FlatFileSource", IgnoreCase: true},
	{Pattern: `\{5918251B-2970-45A4-AB5F-01C3C588FE5A\}`, Replacement: "Microsoft.OLEDBSource", IgnoreCase: true},
	{Pattern: `\{98F16A65-E02F-4B0F-87D4-C217EA074619\}`, Replacement: "Microsoft.ExcelSource", IgnoreCase: true},
	{Pattern: `\{BD06A22E-BC69-4AF7-A69B-C44C2EF684BB\}`, Replacement: "Microsoft.FlatFileSource", IgnoreCase: true},
}
