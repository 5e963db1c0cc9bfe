package static

// Страница собирается как Part1 + график + Part2 + логи + Part3
var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Частицы и диаграмма Вороного</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 55%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 45%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			input[type="number"],
			input[type="submit"],
			select {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			label, h1 {
				color: #d3d3d3;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Частицы</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Ширина (W):</label>
                    <input type="number" id="width" name="width" min="100" max="5000">
                    <label for="height">Высота (H):</label>
                    <input type="number" id="height" name="height" min="100" max="5000"><br>
                    <label for="particles">Частиц (n):</label>
                    <input type="number" id="particles" name="particles" min="1" max="500">
                    <label for="seed">Seed:</label>
                    <input type="number" id="seed" name="seed">
                    <label for="layout">Расстановка:</label>
                    <select id="layout" name="layout">
                        <option value="random">случайная</option>
                        <option value="grid">сетка</option>
                    </select><br>
                    <label for="steps">Шагов за кадр:</label>
                    <input type="number" id="steps" name="steps" min="0" max="100">
                    <label><input type="checkbox" name="show_voronoi" value="true" checked> Вороной</label>
                    <label><input type="checkbox" name="show_delaunay" value="true" checked> Делоне</label>
                    <label><input type="checkbox" id="auto" checked> Авто</label><br>
                    <input type="submit" name="action" value="step">
                    <input type="submit" name="action" value="rebuild">
                </form>
    `

	// Подставляет текущие значения в форму, %s - JSON объект name -> value
	FormState = `
                <script>
                    (function (state) {
                        for (const [name, value] of Object.entries(state)) {
                            const el = document.querySelector('[name="' + name + '"]');
                            if (!el) continue;
                            if (el.type === 'checkbox') {
                                el.checked = value === 'true';
                            } else {
                                el.value = value;
                            }
                        }
                    })(%s);
                </script>`

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            const form = document.getElementById('diagram-form');

            function send(action) {
                const formData = new FormData(form);
                formData.set('action', action);
                const params = new URLSearchParams(formData).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('Ошибка при отправке данных');
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            }

            form.addEventListener('submit', function (e) {
                e.preventDefault();
                send(e.submitter ? e.submitter.value : 'step');
            });

            // периодический пересчет, пока включено "Авто"
            setTimeout(function () {
                if (document.getElementById('auto').checked) {
                    send('step');
                }
            }, 1000);
        </script>
    </body>
    </html>
    `
)
