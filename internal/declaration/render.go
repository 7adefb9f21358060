package declaration

import (
	"strconv"
	"strings"
)

const (
	policyCitation = "根据《政府采购促进中小企业发展管理办法》（财库〔2020〕46号）的规定"

	footer = `以上企业，不属于大企业的分支机构，不存在控股股东为大企业的情形，也不存在与大企业的负责人为同一人的情形。

本企业对上述声明内容的真实性负责。如有虚假，将依法承担相应责任。

企业名称（盖章）：_________________________
日期：_________________________

注：从业人员、营业收入、资产总额填报上一年度数据，无上一年度数据的新成立企业可不填报。`
)

// Title returns the letter heading for t.
func Title(t Type) string {
	return "中小企业声明函（" + t.Label() + "）"
}

// Render writes the plain-text letter. It is pure: every line must already
// carry its classification.
func Render(req Request, lines []Line) string {
	var b strings.Builder

	b.WriteString(Title(req.Type))
	b.WriteString("\n\n")
	b.WriteString("本公司（联合体）郑重声明，")
	b.WriteString(policyCitation)
	b.WriteString("，本公司（联合体）参加")
	b.WriteString(req.TendererName)
	b.WriteString("的")
	b.WriteString(req.ProjectName)
	b.WriteString("采购活动，")
	b.WriteString(typeCommitments[req.Type])
	b.WriteString("。相关企业（含联合体中的中小企业、签订分包意向协议的中小企业）的具体情况如下：")
	b.WriteString("\n\n")

	for _, line := range lines {
		b.WriteString(renderLine(req.Type, line))
		b.WriteString("\n\n")
	}

	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func renderLine(t Type, line Line) string {
	e := line.Target.Enterprise
	tier := "micro"
	if line.Result != nil {
		tier = line.Result.Tier.String()
	}

	return line.Target.Name + "，属于" + line.IndustryName + "行业；" +
		t.Role() + "为" + e.Name +
		"，从业人员" + figure(e.Employees) + "人" +
		"，营业收入为" + figure(e.Revenue) + "万元" +
		"，资产总额为" + figure(e.Assets) + "万元" +
		"，属于" + TierName(tier) + "；"
}

// figure prints a declared value; an undeclared one stays blank.
func figure(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
