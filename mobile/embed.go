//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把项目根目录的 data/ 复制到本目录，
// //go:embed 指令只能嵌入当前包目录及其子目录的文件。
package mobile

import "embed"

//go:embed data/gameplay.yaml data/skills.yaml data/spawn_rules.yaml data/levels
var dataFS embed.FS
