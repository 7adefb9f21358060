package industry

func bound(lo, hi float64) *Range {
	return &Range{Min: &lo, Max: &hi}
}

func below(hi float64) *Range {
	return &Range{Max: &hi}
}

// standards is the registry table in declaration order.
var standards = []Standard{
	{
		ID:             Manufacturing,
		Name:           "工业",
		Medium:         TierRule{Employees: bound(300, 1000), Revenue: bound(2000, 40000), Combinator: All},
		Small:          TierRule{Employees: bound(20, 300), Revenue: bound(300, 2000), Combinator: All},
		Micro:          TierRule{Employees: below(20), Revenue: below(300), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Construction,
		Name:           "建筑业",
		Medium:         TierRule{Revenue: bound(6000, 80000), Assets: bound(5000, 80000), Combinator: All},
		Small:          TierRule{Revenue: bound(300, 6000), Assets: bound(300, 5000), Combinator: All},
		Micro:          TierRule{Revenue: below(300), Assets: below(300), Combinator: Any},
		RequiredFields: []Metric{Revenue, Assets},
	},
	{
		ID:             Wholesale,
		Name:           "批发业",
		Medium:         TierRule{Employees: bound(20, 200), Revenue: bound(5000, 40000), Combinator: All},
		Small:          TierRule{Employees: bound(5, 20), Revenue: bound(1000, 5000), Combinator: All},
		Micro:          TierRule{Employees: below(5), Revenue: below(1000), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Retail,
		Name:           "零售业",
		Medium:         TierRule{Employees: bound(50, 300), Revenue: bound(500, 20000), Combinator: All},
		Small:          TierRule{Employees: bound(10, 50), Revenue: bound(100, 500), Combinator: All},
		Micro:          TierRule{Employees: below(10), Revenue: below(100), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Transportation,
		Name:           "交通运输业",
		Medium:         TierRule{Employees: bound(300, 1000), Revenue: bound(3000, 30000), Combinator: All},
		Small:          TierRule{Employees: bound(20, 300), Revenue: bound(200, 3000), Combinator: All},
		Micro:          TierRule{Employees: below(20), Revenue: below(200), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Warehousing,
		Name:           "仓储业",
		Medium:         TierRule{Employees: bound(100, 200), Revenue: bound(1000, 30000), Combinator: All},
		Small:          TierRule{Employees: bound(20, 100), Revenue: bound(100, 1000), Combinator: All},
		Micro:          TierRule{Employees: below(20), Revenue: below(100), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Postal,
		Name:           "邮政业",
		Medium:         TierRule{Employees: bound(300, 1000), Revenue: bound(2000, 30000), Combinator: All},
		Small:          TierRule{Employees: bound(20, 300), Revenue: bound(100, 2000), Combinator: All},
		Micro:          TierRule{Employees: below(20), Revenue: below(100), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Accommodation,
		Name:           "住宿业",
		Medium:         TierRule{Employees: bound(100, 300), Revenue: bound(2000, 10000), Combinator: All},
		Small:          TierRule{Employees: bound(10, 100), Revenue: bound(100, 2000), Combinator: All},
		Micro:          TierRule{Employees: below(10), Revenue: below(100), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Catering,
		Name:           "餐饮业",
		Medium:         TierRule{Employees: bound(100, 300), Revenue: bound(2000, 10000), Combinator: All},
		Small:          TierRule{Employees: bound(10, 100), Revenue: bound(100, 2000), Combinator: All},
		Micro:          TierRule{Employees: below(10), Revenue: below(100), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Information,
		Name:           "信息传输业",
		Medium:         TierRule{Employees: bound(100, 2000), Revenue: bound(1000, 100000), Combinator: All},
		Small:          TierRule{Employees: bound(10, 100), Revenue: bound(100, 1000), Combinator: All},
		Micro:          TierRule{Employees: below(10), Revenue: below(100), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             Software,
		Name:           "软件和信息技术服务业",
		Medium:         TierRule{Employees: bound(100, 300), Revenue: bound(1000, 10000), Combinator: All},
		Small:          TierRule{Employees: bound(10, 100), Revenue: bound(50, 1000), Combinator: All},
		Micro:          TierRule{Employees: below(10), Revenue: below(50), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             RealEstate,
		Name:           "房地产开发经营",
		Medium:         TierRule{Revenue: bound(1000, 200000), Assets: bound(5000, 10000), Combinator: All},
		Small:          TierRule{Revenue: bound(100, 1000), Assets: bound(2000, 5000), Combinator: All},
		Micro:          TierRule{Revenue: below(100), Assets: below(2000), Combinator: Any},
		RequiredFields: []Metric{Revenue, Assets},
	},
	{
		ID:             PropertyManagement,
		Name:           "物业管理",
		Medium:         TierRule{Employees: bound(300, 1000), Revenue: bound(1000, 5000), Combinator: All},
		Small:          TierRule{Employees: bound(100, 300), Revenue: bound(500, 1000), Combinator: All},
		Micro:          TierRule{Employees: below(100), Revenue: below(500), Combinator: Any},
		RequiredFields: []Metric{Employees, Revenue},
	},
	{
		ID:             LeasingServices,
		Name:           "租赁和商务服务业",
		Medium:         TierRule{Employees: bound(100, 300), Assets: bound(8000, 120000), Combinator: All},
		Small:          TierRule{Employees: bound(10, 100), Assets: bound(100, 8000), Combinator: All},
		Micro:          TierRule{Employees: below(10), Assets: below(100), Combinator: Any},
		RequiredFields: []Metric{Employees, Assets},
	},
	{
		ID:             Other,
		Name:           "其他未列明行业",
		Medium:         TierRule{Employees: bound(100, 300), Combinator: All},
		Small:          TierRule{Employees: bound(10, 100), Combinator: All},
		Micro:          TierRule{Employees: below(10), Combinator: Any},
		RequiredFields: []Metric{Employees},
	},
}
